package http

import (
	"github.com/gin-gonic/gin"

	"reminder-nlp-service/internal/reminder"
	pkgLog "reminder-nlp-service/pkg/log"
)

// Handler is the public interface for the reminder HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc reminder.UseCase
}

// New creates a new HTTP handler for the reminder domain.
func New(l pkgLog.Logger, uc reminder.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
