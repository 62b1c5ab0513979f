package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/service"
	"github.com/maxviazov/planning-api/pkg/response"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name     string
		in       error
		wantCode int
		wantErr  string
		wantMsg  string
	}{
		{"invalid_input", service.InvalidField("name", "is required"), 400, "invalid_input", "one or more fields are invalid"},
		{"not_found", fmt.Errorf("policy %w", repository.ErrNotFound), 404, "not_found", "policy not found"},
		{"already_exists", fmt.Errorf("goal id %w", repository.ErrAlreadyExists), 409, "already_exists", "goal id already exists"},
		{"conflict", repository.ErrConflict, 409, "conflict", "conflict"},
		{"internal", errors.New("disk on fire"), 500, "internal_error", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, payload := response.MapError(tc.in)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantErr, payload.Error)
			assert.Equal(t, tc.wantMsg, payload.Message)
			if tc.wantErr == "invalid_input" {
				require.Len(t, payload.FieldErrors, 1)
				assert.Equal(t, "name", payload.FieldErrors[0].Field)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	response.WriteError(c, fmt.Errorf("site %w", repository.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["error"])
	assert.Equal(t, "site not found", body["message"])
	assert.NotContains(t, body, "field_errors")
}
