package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deppfellow/authgate/internal/errs"
	"github.com/deppfellow/authgate/internal/validation"
)

func TestMissingFields(t *testing.T) {
	required := []string{"email", "password"}

	tests := []struct {
		name string
		body map[string]any
		want []string
	}{
		{"all present", map[string]any{"email": "a@x.com", "password": "p"}, []string{}},
		{"password absent", map[string]any{"email": "a@x.com"}, []string{"password"}},
		{"email absent", map[string]any{"password": "p"}, []string{"email"}},
		{"both absent keeps order", map[string]any{}, []string{"email", "password"}},
		{"nil body", nil, []string{"email", "password"}},
		{"nil value", map[string]any{"email": nil, "password": "p"}, []string{"email"}},
		{"empty string", map[string]any{"email": "", "password": "p"}, []string{"email"}},
		{"extra keys ignored", map[string]any{"email": "a", "password": "b", "name": ""}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.MissingFields(tt.body, required))
		})
	}
}

func TestFieldErrors(t *testing.T) {
	assert.Nil(t, validation.FieldErrors(nil))
	assert.Equal(t, []errs.FieldError{
		{Field: "email", Error: "is required"},
		{Field: "password", Error: "is required"},
	}, validation.FieldErrors([]string{"email", "password"}))
}
