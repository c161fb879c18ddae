package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the interpreter endpoints under rg. Extra middleware (rate
// limiting) applies to every route in the group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw ...gin.HandlerFunc) {
	g := rg.Group("", mw...)
	{
		g.POST("/interpret", h.Interpret)
		g.POST("/chat", h.Chat)
		g.POST("/summary", h.Summary)
	}
}
