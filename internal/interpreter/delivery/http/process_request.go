package http

import (
	"github.com/gin-gonic/gin"
)

// processInterpretReq binds and validates the interpret request body.
func (h *handler) processInterpretReq(c *gin.Context) (interpretReq, error) {
	var req interpretReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSummaryReq binds and validates the summary request body.
func (h *handler) processSummaryReq(c *gin.Context) (summaryReq, error) {
	var req summaryReq
	err := c.ShouldBindJSON(&req)
	return req, err
}
