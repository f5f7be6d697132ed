package handler

import (
	"github.com/deppfellow/authgate/internal/server"
	"github.com/deppfellow/authgate/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Health  *HealthHandler  // Health serves the liveness endpoint.
	OpenAPI *OpenAPIHandler // OpenAPI serves the API description.
	Auth    *AuthHandler    // Auth serves sign-up and sign-in.
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Auth:    NewAuthHandler(s, services),
	}
}
