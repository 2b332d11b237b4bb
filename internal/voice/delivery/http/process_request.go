package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	pkgErrors "voice-task-parser/pkg/errors"
)

// processTranscriptReq binds and validates a transcript request body.
func (h *handler) processTranscriptReq(c *gin.Context) (transcriptReq, error) {
	var req transcriptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	if err := req.validate(); err != nil {
		return req, badRequest(err)
	}
	return req, nil
}

// processApplyFilterReq binds and validates the apply filter request body.
func (h *handler) processApplyFilterReq(c *gin.Context) (applyFilterReq, error) {
	var req applyFilterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	if err := req.validate(); err != nil {
		return req, badRequest(err)
	}
	return req, nil
}

func badRequest(err error) error {
	return fmt.Errorf("%w: %s", pkgErrors.ErrBadRequest, err.Error())
}
