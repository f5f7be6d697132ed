package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/authgate/internal/controller"
	"github.com/deppfellow/authgate/internal/server"
	"github.com/deppfellow/authgate/internal/service"
)

// AuthHandler exposes the sign-up and sign-in controllers.
type AuthHandler struct {
	Handler
	signUp controller.Controller
	signIn controller.Controller
}

func NewAuthHandler(s *server.Server, services *service.Services) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		signUp:  controller.NewSignUpController(services.SignUp, *s.Logger),
		signIn:  controller.NewSignInController(services.SignIn, *s.Logger),
	}
}

// SignUp answers 201 with the created account.
func (h *AuthHandler) SignUp(c echo.Context) error {
	return Handle(h.Handler, h.signUp)(c)
}

// SignIn answers 200 with the authentication result.
func (h *AuthHandler) SignIn(c echo.Context) error {
	return Handle(h.Handler, h.signIn)(c)
}
