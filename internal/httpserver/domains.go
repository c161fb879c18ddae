package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	interpreterHTTP "friday-assistant/internal/interpreter/delivery/http"
	"friday-assistant/internal/middleware"
	settingsHTTP "friday-assistant/internal/settings/delivery/http"
)

// setupInterpreterDomain registers /interpret, /chat and /summary. Only these
// routes reach the external parser, so only they are rate limited.
func (srv *HTTPServer) setupInterpreterDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := interpreterHTTP.New(srv.l, srv.interpreterUC, srv.settings, srv.historyLimit)
	interpreterHTTP.RegisterRoutes(api, h, mw.RateLimit())

	srv.l.Infof(ctx, "Interpreter domain registered")
}

// setupSettingsDomain registers /settings.
func (srv *HTTPServer) setupSettingsDomain(ctx context.Context, api *gin.RouterGroup) {
	h := settingsHTTP.New(srv.l, srv.settings)
	settingsHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Settings domain registered")
}
