package service

import (
	"errors"

	"github.com/deppfellow/authgate/pkg/usecase"
)

// Services groups the account use cases.
type Services struct {
	SignUp usecase.SignUp
	SignIn usecase.SignIn
}

// NewServices validates and groups the use cases.
func NewServices(signUp usecase.SignUp, signIn usecase.SignIn) (*Services, error) {
	if fn, ok := signUp.(usecase.SignUpFunc); signUp == nil || ok && fn == nil {
		return nil, errors.New("sign-up use case is required")
	}
	if fn, ok := signIn.(usecase.SignInFunc); signIn == nil || ok && fn == nil {
		return nil, errors.New("sign-in use case is required")
	}

	return &Services{
		SignUp: signUp,
		SignIn: signIn,
	}, nil
}
