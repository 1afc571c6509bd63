package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Service identity constants (single source for version and name).
const (
	ServiceName    = "NLP Reminder Parser"
	ServiceVersion = "1.0.0"
)

// serviceInfo reports the service identity and extraction backend.
// @Summary Service Info
// @Description Returns service identity and whether the BERT-backed extraction variant initialized
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service info"
// @Router / [get]
func (srv HTTPServer) serviceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":        ServiceName,
		"bert_available": srv.bertAvailable,
		"version":        ServiceVersion,
	})
}

// healthCheck handles health check requests. Always healthy once the
// process is running; there is no deep health check of the model.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"bert_available": srv.bertAvailable,
	})
}

// readyCheck handles readiness check requests.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ready",
		"bert_available": srv.bertAvailable,
	})
}

// liveCheck handles liveness check requests.
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "alive",
		"bert_available": srv.bertAvailable,
	})
}
