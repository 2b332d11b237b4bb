package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-parser/internal/voice"
	"voice-task-parser/pkg/log"
)

// Handler is the public interface for the voice HTTP delivery layer.
type Handler interface {
	ParseTask(c *gin.Context)
	ParseTaskRemote(c *gin.Context)
	ParseFilter(c *gin.Context)
	ApplyFilter(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc voice.UseCase
}

// New creates a new HTTP handler for the voice domain.
func New(l log.Logger, uc voice.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
