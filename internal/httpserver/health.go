package httpserver

import (
	"github.com/gin-gonic/gin"

	"voice-task-parser/pkg/response"
)

const (
	HealthMessage = "Voice task parser is running"
	HealthVersion = "1.0.0"
	ServiceName   = "voice-task-parser"
)

func (srv HTTPServer) probeBody(status string) gin.H {
	return gin.H{
		"status":      status,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.probeBody("healthy"))
}

// readyCheck reports ready once routes are mapped. The remote extraction
// path is optional and does not gate readiness.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.probeBody("ready"))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.probeBody("alive"))
}
