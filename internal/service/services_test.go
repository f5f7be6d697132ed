package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/authgate/internal/service"
	"github.com/deppfellow/authgate/pkg/either"
	"github.com/deppfellow/authgate/pkg/usecase"
)

var (
	signUp = usecase.SignUpFunc(func(context.Context, usecase.Credentials) (usecase.SignUpResult, error) {
		return either.Right[*usecase.Failure](usecase.UserData{}), nil
	})
	signIn = usecase.SignInFunc(func(context.Context, usecase.Credentials) (usecase.SignInResult, error) {
		return either.Right[*usecase.Failure](usecase.AuthenticationResult{}), nil
	})
)

func TestNewServices(t *testing.T) {
	services, err := service.NewServices(signUp, signIn)
	require.NoError(t, err)
	assert.NotNil(t, services.SignUp)
	assert.NotNil(t, services.SignIn)
}

func TestNewServices_RequiresBoth(t *testing.T) {
	_, err := service.NewServices(nil, signIn)
	assert.EqualError(t, err, "sign-up use case is required")

	_, err = service.NewServices(signUp, nil)
	assert.EqualError(t, err, "sign-in use case is required")
}

func TestNewServices_RejectsNilFuncAdapters(t *testing.T) {
	_, err := service.NewServices(usecase.SignUpFunc(nil), signIn)
	assert.EqualError(t, err, "sign-up use case is required")

	_, err = service.NewServices(signUp, usecase.SignInFunc(nil))
	assert.EqualError(t, err, "sign-in use case is required")
}
