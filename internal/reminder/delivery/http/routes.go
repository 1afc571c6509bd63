package http

import (
	"github.com/gin-gonic/gin"

	"reminder-nlp-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	reminders := rg.Group("/reminders")
	{
		reminders.POST("/parse", mw.RequestID(), mw.RateLimit(), h.Parse)
	}
}
