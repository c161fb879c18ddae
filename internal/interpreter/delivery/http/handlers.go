package http

import (
	"github.com/gin-gonic/gin"

	"friday-assistant/pkg/response"
)

// Interpret godoc
// @Summary     Interpret an utterance
// @Description Converts a free-form utterance into an intent record. Falls back to local parsing when the external parser is unavailable or fails, so a record is always returned.
// @Tags        Interpreter
// @Accept      json
// @Produce     json
// @Param       body body interpretReq true "Utterance, optional reference time and recent turns"
// @Success     200 {object} response.Resp{data=interpretResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/interpret [POST]
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInterpretReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output := h.uc.Interpret(ctx, req.toInput(h.settings.Current(), h.historyLimit))
	response.OK(c, h.newInterpretResp(output))
}

// Chat godoc
// @Summary     Chat with FRIDAY
// @Description Returns a short conversational reply, using at most the last 6 turns as context.
// @Tags        Interpreter
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Utterance and recent turns"
// @Success     200 {object} response.Resp{data=chatResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output := h.uc.Chat(ctx, req.toInput(h.settings.Current(), h.historyLimit))
	response.OK(c, h.newChatResp(output))
}

// Summary godoc
// @Summary     Summarize a day or week
// @Description Renders daily or weekly stats as a short paragraph.
// @Tags        Interpreter
// @Accept      json
// @Produce     json
// @Param       body body summaryReq true "Summary kind and stats"
// @Success     200 {object} response.Resp{data=summaryResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/summary [POST]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummaryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Summarize(ctx, req.toInput(h.settings.Current()))
	if err != nil {
		h.l.Errorf(ctx, "uc.Summarize: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newSummaryResp(req.Kind, output))
}
