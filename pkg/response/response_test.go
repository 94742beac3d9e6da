package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performJSON(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	handler(c)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return resp
}

func TestSuccess(t *testing.T) {
	w := performJSON(func(c *gin.Context) {
		Success(c, gin.H{"hello": "world"})
	})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusOK)
	}
	resp := decodeBody(t, w)
	if resp.Code != 0 {
		t.Errorf("code = %d, expected 0", resp.Code)
	}
	if resp.Message != "ok" {
		t.Errorf("message = %q, expected %q", resp.Message, "ok")
	}
}

func TestCreated(t *testing.T) {
	w := performJSON(func(c *gin.Context) {
		Created(c, gin.H{"id": 1})
	})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusCreated)
	}
}

func TestError_AppError(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
	}{
		{"bad request", NewBadRequest("bad input"), http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("login required"), http.StatusUnauthorized},
		{"forbidden", NewForbidden(), http.StatusForbidden},
		{"not found", NewNotFound("no such record"), http.StatusNotFound},
		{"server error", NewServerError("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(func(c *gin.Context) {
				Error(c, tt.err)
			})
			if w.Code != tt.status {
				t.Errorf("status = %d, expected %d", w.Code, tt.status)
			}
			resp := decodeBody(t, w)
			if resp.Code != tt.status {
				t.Errorf("code = %d, expected %d", resp.Code, tt.status)
			}
		})
	}
}

func TestError_ValidationError(t *testing.T) {
	valErr := NewValidationError([]FieldViolation{
		{Field: "percentage", Message: "must be between 0 and 100"},
		{Field: "category", Message: "must be one of frontend backend database tools cloud"},
	})

	w := performJSON(func(c *gin.Context) {
		Error(c, valErr)
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusBadRequest)
	}

	var resp struct {
		Code int `json:"code"`
		Data struct {
			Violations []FieldViolation `json:"violations"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Data.Violations) != 2 {
		t.Fatalf("violations = %d, expected 2", len(resp.Data.Violations))
	}
	if resp.Data.Violations[0].Field != "percentage" {
		t.Errorf("first violation field = %q, expected %q", resp.Data.Violations[0].Field, "percentage")
	}
}

func TestError_UnknownError(t *testing.T) {
	w := performJSON(func(c *gin.Context) {
		Error(c, errors.New("database connection lost"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusInternalServerError)
	}

	// The raw error must not leak to the client
	resp := decodeBody(t, w)
	if resp.Message != "internal server error" {
		t.Errorf("message = %q, expected generic message", resp.Message)
	}
}

func TestForbidden_Opaque(t *testing.T) {
	w := performJSON(func(c *gin.Context) {
		Forbidden(c)
	})

	resp := decodeBody(t, w)
	if resp.Message != "forbidden" {
		t.Errorf("message = %q, expected %q", resp.Message, "forbidden")
	}
}

func TestValidationError_ErrorString(t *testing.T) {
	empty := NewValidationError(nil)
	if empty.Error() != "validation failed" {
		t.Errorf("Error() = %q", empty.Error())
	}

	one := NewValidationError([]FieldViolation{{Field: "slug", Message: "already in use"}})
	if one.Error() != "validation failed: slug already in use" {
		t.Errorf("Error() = %q", one.Error())
	}
}
