package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"friday-assistant/internal/interpreter"
	"friday-assistant/pkg/response"
)

var errBlankUtterance = errors.New("utterance must not be blank")

// writeError maps use-case errors onto the response envelope.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, interpreter.ErrInvalidSummaryKind):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
