// Package response holds the JSON envelopes every handler writes and the error-to-status mapping.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/service"
)

// ErrorPayload is the body of every non-2xx response.
type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// storeErrors maps store sentinels to statuses; the first match wins.
var storeErrors = []struct {
	target error
	status int
	code   string
}{
	{repository.ErrNotFound, http.StatusNotFound, "not_found"},
	{repository.ErrAlreadyExists, http.StatusConflict, "already_exists"},
	{repository.ErrConflict, http.StatusConflict, "conflict"},
}

// MapError picks the status and payload for err. Store errors carry the wrapped text
// ("policy not found"); anything unrecognised is a bare 500.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}
	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	}
	for _, se := range storeErrors {
		if errors.Is(err, se.target) {
			return se.status, ErrorPayload{Error: se.code, Message: err.Error()}
		}
	}
	return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
}

// WriteError aborts with the mapped payload and records err on the context for the access log.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, payload)
}

func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
