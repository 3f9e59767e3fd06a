// ================== pkg/errors/errors.go =================
package errors

import "errors"

// ErrValidation is wrapped by every request validation failure.
var ErrValidation = errors.New("validation failed")
