// Package controller translates between the transport-agnostic request and
// response shapes and the account use cases.
//
// A controller validates the request body, invokes its use case, and maps
// the returned either.Either to exactly one HTTPResponse. Business failures
// become 400 or 403 responses; returned errors and panics become 500.
package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/deppfellow/authgate/internal/validation"
	"github.com/deppfellow/authgate/pkg/usecase"
)

// HTTPRequest is the inbound request as seen by a controller. Body is read-only.
type HTTPRequest struct {
	Body map[string]any
}

// HTTPResponse is created fresh for every Handle call.
type HTTPResponse struct {
	StatusCode int
	Body       any
}

// Controller handles a single operation. Handle always returns a response.
type Controller interface {
	Handle(ctx context.Context, req HTTPRequest) HTTPResponse
}

// credentialFields are required by both operations, in reporting order.
var credentialFields = []string{"email", "password"}

// MissingParams returns the required field names absent from req's body.
func MissingParams(req HTTPRequest, required []string) []string {
	return validation.MissingFields(req.Body, required)
}

func credentials(req HTTPRequest) usecase.Credentials {
	return usecase.Credentials{
		Email:    stringField(req.Body, "email"),
		Password: stringField(req.Body, "password"),
	}
}

func stringField(body map[string]any, name string) string {
	switch v := body[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
