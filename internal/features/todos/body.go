package todos

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

var (
	errInvalidJSON = errors.New("Invalid JSON body")
	errNotAnObject = errors.New("Request body must be a JSON object")
)

// requestBody keeps each top-level JSON member undecoded so validation can
// tell an omitted field from one sent as null, the wrong type or empty.
type requestBody map[string]json.RawMessage

func decodeBody(r io.Reader) (requestBody, error) {
	if r == nil {
		return requestBody{}, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errInvalidJSON
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return requestBody{}, nil
	}

	var body requestBody
	if err := json.Unmarshal(data, &body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errNotAnObject
		}
		return nil, errInvalidJSON
	}
	if body == nil {
		// literal null
		return nil, errNotAnObject
	}
	return body, nil
}

func (b requestBody) has(key string) bool {
	_, ok := b[key]
	return ok
}

func (b requestBody) isNull(key string) bool {
	raw, ok := b[key]
	return ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// str returns the member as a string, or false if it is absent or not a JSON string.
func (b requestBody) str(key string) (string, bool) {
	if !b.has(key) || b.isNull(key) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(b[key], &s); err != nil {
		return "", false
	}
	return s, true
}

// boolean only accepts the JSON literals true and false.
func (b requestBody) boolean(key string) (bool, bool) {
	if !b.has(key) || b.isNull(key) {
		return false, false
	}
	var v bool
	if err := json.Unmarshal(b[key], &v); err != nil {
		return false, false
	}
	return v, true
}
