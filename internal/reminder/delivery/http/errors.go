package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"reminder-nlp-service/internal/reminder"
	"reminder-nlp-service/pkg/response"
)

// mapError translates domain errors into HTTP responses. An inference
// failure is the one hard failure the pipeline can produce.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reminder.ErrInference):
		response.InternalError(c, err)
	default:
		response.Error(c, err, nil)
	}
}
