package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voice-task-parser/internal/middleware"
	voiceHTTP "voice-task-parser/internal/voice/delivery/http"
)

// setupVoiceDomain wires the voice handler and registers /api/v1/voice/*.
func (srv HTTPServer) setupVoiceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := voiceHTTP.New(srv.l, srv.voiceUC)
	voiceHTTP.RegisterRoutes(api, h, mw.RateLimit())

	srv.l.Infof(ctx, "Voice domain registered")
	return nil
}
