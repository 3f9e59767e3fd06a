package todos

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const missingID = "00000000-0000-0000-0000-000000000000"

func setupRouter(t *testing.T) (*gin.Engine, *Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := NewRepository()
	r := gin.New()
	RegisterRoutes(r, repo)
	return r, repo
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeTodo(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

type errorsBody struct {
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func requireFieldError(t *testing.T, w *httptest.ResponseRecorder, field, message string) {
	t.Helper()
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body errorsBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, e := range body.Errors {
		if e.Field == field && e.Message == message {
			return
		}
	}
	t.Fatalf("expected error {%s: %s} in %s", field, message, w.Body.String())
}

func requireNotFound(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"Todo not found"}`, w.Body.String())
}

func TestList(t *testing.T) {
	r, repo := setupRouter(t)

	w := performRequest(r, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())

	repo.Create(CreateTodoRequest{Title: "Todo 1"})
	repo.Create(CreateTodoRequest{Title: "Todo 2"})

	w = performRequest(r, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	require.Equal(t, "Todo 1", list[0].Title)
	require.Equal(t, "Todo 2", list[1].Title)
}

func TestGet(t *testing.T) {
	r, repo := setupRouter(t)
	todo := repo.Create(CreateTodoRequest{Title: "Test Todo", Description: "Test Description"})

	w := performRequest(r, http.MethodGet, "/todos/"+todo.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeTodo(t, w)
	require.Equal(t, todo.ID, body["id"])
	require.Equal(t, "Test Todo", body["title"])
	require.Equal(t, "Test Description", body["description"])
	require.Equal(t, false, body["completed"])
	require.Contains(t, body, "createdAt")
	require.Contains(t, body, "updatedAt")
}

func TestGet_Errors(t *testing.T) {
	r, _ := setupRouter(t)

	requireNotFound(t, performRequest(r, http.MethodGet, "/todos/"+missingID, ""))

	w := performRequest(r, http.MethodGet, "/todos/invalid-id", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"errors":[{"field":"id","message":"Invalid ID format"}]}`, w.Body.String())
}

func TestCreate(t *testing.T) {
	r, _ := setupRouter(t)

	w := performRequest(r, http.MethodPost, "/todos", `{"title":"New Todo","description":"New Description"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeTodo(t, w)
	require.Equal(t, "New Todo", body["title"])
	require.Equal(t, "New Description", body["description"])
	require.Equal(t, false, body["completed"])
	require.NotEmpty(t, body["id"])
	require.NotEmpty(t, body["createdAt"])
	require.Equal(t, body["createdAt"], body["updatedAt"])
}

func TestCreate_DefaultsAndTrimming(t *testing.T) {
	r, _ := setupRouter(t)

	w := performRequest(r, http.MethodPost, "/todos", `{"title":"Todo without description"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "", decodeTodo(t, w)["description"])

	w = performRequest(r, http.MethodPost, "/todos", `{"title":"  Trimmed Title  ","description":"  padded  "}`)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeTodo(t, w)
	require.Equal(t, "Trimmed Title", body["title"])
	require.Equal(t, "padded", body["description"])
}

func TestCreate_ValidationErrors(t *testing.T) {
	r, repo := setupRouter(t)

	tests := []struct {
		name    string
		body    string
		field   string
		message string
	}{
		{"missing title", `{"description":"Only description"}`, "title", "Title is required"},
		{"empty title", `{"title":""}`, "title", "Title cannot be empty"},
		{"whitespace title", `{"title":"   "}`, "title", "Title cannot be empty"},
		{"long title", `{"title":"` + strings.Repeat("a", 201) + `"}`, "title", "Title cannot exceed 200 characters"},
		{"number title", `{"title":123}`, "title", "Title must be a string"},
		{"number description", `{"title":"Valid Title","description":123}`, "description", "Description must be a string"},
		{"long description", `{"title":"Valid Title","description":"` + strings.Repeat("a", 1001) + `"}`, "description", "Description cannot exceed 1000 characters"},
		{"no body", ``, "title", "Title is required"},
		{"malformed json", `{"title":`, "body", "Invalid JSON body"},
		{"array body", `[{"title":"x"}]`, "body", "Request body must be a JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(r, http.MethodPost, "/todos", tt.body)
			requireFieldError(t, w, tt.field, tt.message)
		})
	}

	require.Equal(t, 0, repo.Count())
}

func TestUpdate(t *testing.T) {
	r, repo := setupRouter(t)
	todo := repo.Create(CreateTodoRequest{Title: "Original Title", Description: "Original"})

	w := performRequest(r, http.MethodPut, "/todos/"+todo.ID, `{"title":"Updated Title"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeTodo(t, w)
	require.Equal(t, "Updated Title", body["title"])
	require.Equal(t, "Original", body["description"])
	require.Equal(t, todo.ID, body["id"])

	w = performRequest(r, http.MethodPut, "/todos/"+todo.ID, `{"description":"Updated Description"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Updated Description", decodeTodo(t, w)["description"])

	w = performRequest(r, http.MethodPut, "/todos/"+todo.ID, `{"completed":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decodeTodo(t, w)["completed"])

	w = performRequest(r, http.MethodPut, "/todos/"+todo.ID, `{"title":"  New Title ","description":" New Desc ","completed":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeTodo(t, w)
	require.Equal(t, "New Title", body["title"])
	require.Equal(t, "New Desc", body["description"])
	require.Equal(t, false, body["completed"])
}

func TestUpdate_PreservesIdentity(t *testing.T) {
	r, repo := setupRouter(t)
	todo := repo.Create(CreateTodoRequest{Title: "Title"})
	createdAt := todo.CreatedAt.Format(time.RFC3339Nano)

	w := performRequest(r, http.MethodPut, "/todos/"+todo.ID,
		`{"title":"Updated","id":"11111111-1111-1111-1111-111111111111","createdAt":"1999-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeTodo(t, w)
	require.Equal(t, todo.ID, body["id"])
	require.Equal(t, createdAt, body["createdAt"])
	created, err := time.Parse(time.RFC3339Nano, body["createdAt"].(string))
	require.NoError(t, err)
	updated, err := time.Parse(time.RFC3339Nano, body["updatedAt"].(string))
	require.NoError(t, err)
	require.False(t, updated.Before(created))
}

func TestUpdate_Errors(t *testing.T) {
	r, repo := setupRouter(t)
	todo := repo.Create(CreateTodoRequest{Title: "Title"})

	requireNotFound(t, performRequest(r, http.MethodPut, "/todos/"+missingID, `{"title":"Updated"}`))

	w := performRequest(r, http.MethodPut, "/todos/invalid-id", `{"title":"Updated"}`)
	requireFieldError(t, w, "id", "Invalid ID format")

	// a malformed id wins over a bad body
	w = performRequest(r, http.MethodPut, "/todos/invalid-id", `{}`)
	require.JSONEq(t, `{"errors":[{"field":"id","message":"Invalid ID format"}]}`, w.Body.String())

	w = performRequest(r, http.MethodPut, "/todos/"+todo.ID, `{}`)
	requireFieldError(t, w, "body", "At least one field (title, description, or completed) must be provided")

	w = performRequest(r, http.MethodPut, "/todos/"+todo.ID, `{"title":""}`)
	requireFieldError(t, w, "title", "Title cannot be empty")

	w = performRequest(r, http.MethodPut, "/todos/"+todo.ID, `{"completed":"yes"}`)
	requireFieldError(t, w, "completed", "Completed must be a boolean")

	require.Equal(t, "Title", repo.GetByID(todo.ID).Title)
	require.False(t, repo.GetByID(todo.ID).Completed)
}

func TestDelete(t *testing.T) {
	r, repo := setupRouter(t)
	todo := repo.Create(CreateTodoRequest{Title: "To Delete"})

	w := performRequest(r, http.MethodDelete, "/todos/"+todo.ID, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	requireNotFound(t, performRequest(r, http.MethodGet, "/todos/"+todo.ID, ""))
	requireNotFound(t, performRequest(r, http.MethodDelete, "/todos/"+todo.ID, ""))

	w = performRequest(r, http.MethodDelete, "/todos/invalid-id", "")
	requireFieldError(t, w, "id", "Invalid ID format")
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	r, _ := setupRouter(t)

	created := performRequest(r, http.MethodPost, "/todos", `{"title":"Round trip","description":"same bytes"}`)
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeTodo(t, created)["id"].(string)

	fetched := performRequest(r, http.MethodGet, "/todos/"+id, "")
	require.Equal(t, http.StatusOK, fetched.Code)
	require.JSONEq(t, created.Body.String(), fetched.Body.String())
}
