package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/authgate/internal/handler"
)

func registerAuthRoutes(g *echo.Group, h *handler.Handlers) {
	auth := g.Group("/auth")

	auth.POST("/signup", h.Auth.SignUp)
	auth.POST("/signin", h.Auth.SignIn)
}
