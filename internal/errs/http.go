// Package errs defines the error envelope sent to API clients.
//
// Every non-2xx body produced by the boundary is an *HTTPError so clients
// see one consistent shape:
//
//	{ "code": "WRONG_PASSWORD", "message": "Wrong password.", "status": 403 }
//
// - Return consistent error shapes to API clients (JSON).
// - Support field-level errors for missing request parameters.
// - Play nicely with Go's standard errors package.
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "email", "error": "is required" }
type FieldError struct {
	// Field is the request body key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error body returned to clients.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST", "EXISTING_USER").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: lets the transport replace the message before it leaves the process.
//   - Errors: per-field errors.
//   - Detail: raw fault text for 500 responses, dropped unless exposure is enabled.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors,omitempty"`

	Detail string `json:"detail,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It does NOT compare Code/Status/etc.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Detail:   e.Detail,
	}
}

// WithoutDetail returns a copy with Detail cleared.
func (e *HTTPError) WithoutDetail() *HTTPError {
	out := e.WithMessage(e.Message)
	out.Detail = ""
	return out
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
