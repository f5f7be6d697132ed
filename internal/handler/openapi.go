package handler

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/authgate/internal/server"
)

//go:embed openapi.json
var openAPISpec []byte

// OpenAPIHandler serves the OpenAPI description of the auth endpoints.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPISpec writes the embedded document. Cache-Control is set to
// "no-cache" so clients do not reuse old docs.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.Blob(http.StatusOK, echo.MIMEApplicationJSON, openAPISpec); err != nil {
		return fmt.Errorf("failed to write OpenAPI document: %w", err)
	}

	return nil
}
