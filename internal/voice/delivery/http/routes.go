package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mws ...gin.HandlerFunc) {
	voice := rg.Group("/voice", mws...)
	{
		voice.POST("/task", h.ParseTask)
		voice.POST("/task/remote", h.ParseTaskRemote)
		voice.POST("/filter", h.ParseFilter)
		voice.POST("/filter/apply", h.ApplyFilter)
	}
}
