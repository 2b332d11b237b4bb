package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-parser/pkg/response"
)

// ParseTask godoc
// @Summary     Parse a task utterance
// @Description Extracts task attributes from a transcript with the local rule-based extractors.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body transcriptReq true "Transcript"
// @Success     200  {object} parseTaskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/task [POST]
func (h *handler) ParseTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscriptReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseTask(ctx, req.toTaskInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ParseTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseTaskResp(output))
}

// ParseTaskRemote godoc
// @Summary     Parse a task utterance with the hosted model
// @Description Extracts task attributes through the configured language model. Any model failure yields the all-defaults record with source "fallback".
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body transcriptReq true "Transcript"
// @Success     200  {object} parseTaskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/task/remote [POST]
func (h *handler) ParseTaskRemote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscriptReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseTaskRemote(ctx, req.toTaskInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ParseTaskRemote: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseTaskResp(output))
}

// ParseFilter godoc
// @Summary     Parse a filter query
// @Description Extracts task filter criteria from a spoken query.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body transcriptReq true "Transcript"
// @Success     200  {object} parseFilterResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/filter [POST]
func (h *handler) ParseFilter(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranscriptReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseFilter(ctx, req.toFilterInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ParseFilter: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseFilterResp(output))
}

// ApplyFilter godoc
// @Summary     Filter a task list by a spoken query
// @Description Parses the query and returns the supplied tasks that match it.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body applyFilterReq true "Transcript and tasks"
// @Success     200  {object} applyFilterResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/filter/apply [POST]
func (h *handler) ApplyFilter(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processApplyFilterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ApplyFilter(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ApplyFilter: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newApplyFilterResp(output))
}
