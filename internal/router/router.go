// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/authgate/internal/handler"
	"github.com/deppfellow/authgate/internal/middleware"
	"github.com/deppfellow/authgate/internal/server"
)

// NewRouter builds the Echo instance with the global middleware chain and
// every route registered.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.JSONSerializer = handler.JSONSerializer{}

	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	// Order matters: the request id must exist before the logger is built,
	// and the New Relic transaction before trace ids are read.
	r.Use(
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Global.CORS(),
		mw.Global.Secure(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
	)

	registerSystemRoutes(r, h)

	v1 := r.Group("/api/v1")
	registerAuthRoutes(v1, h)

	return r
}
