package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/authgate/pkg/either"
	"github.com/deppfellow/authgate/pkg/usecase"
)

func TestFailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		failure *usecase.Failure
		kind    usecase.Kind
		code    string
		message string
	}{
		{"missing param", usecase.MissingParam("email, password"), usecase.KindMissingParam, "MISSING_PARAM", "Missing parameter from request: email, password."},
		{"invalid email", usecase.InvalidEmail("nope"), usecase.KindInvalidEmail, "INVALID_EMAIL", "Invalid email: nope."},
		{"invalid password", usecase.InvalidPassword(), usecase.KindInvalidPassword, "INVALID_PASSWORD", "Invalid password."},
		{"existing user", usecase.ExistingUser("a@x.com"), usecase.KindExistingUser, "EXISTING_USER", "User a@x.com already exists."},
		{"user not found", usecase.UserNotFound("a@x.com"), usecase.KindUserNotFound, "USER_NOT_FOUND", "User a@x.com not found."},
		{"wrong password", usecase.WrongPassword(), usecase.KindWrongPassword, "WRONG_PASSWORD", "Wrong password."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.failure.Kind)
			assert.Equal(t, tt.code, tt.failure.Code())
			assert.Equal(t, tt.message, tt.failure.Error())
		})
	}
}

func TestUnknownKindString(t *testing.T) {
	assert.Equal(t, "KIND(99)", usecase.Kind(99).String())
}

func TestFailureIsAnError(t *testing.T) {
	var err error = usecase.WrongPassword()

	var failure *usecase.Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, usecase.KindWrongPassword, failure.Kind)
}

func TestFuncAdapters(t *testing.T) {
	var signUp usecase.SignUp = usecase.SignUpFunc(func(_ context.Context, in usecase.Credentials) (usecase.SignUpResult, error) {
		return either.Right[*usecase.Failure](usecase.UserData{ID: "u1", Email: in.Email}), nil
	})
	var signIn usecase.SignIn = usecase.SignInFunc(func(_ context.Context, in usecase.Credentials) (usecase.SignInResult, error) {
		return either.Left[*usecase.Failure, usecase.AuthenticationResult](usecase.UserNotFound(in.Email)), nil
	})

	up, err := signUp.Perform(context.Background(), usecase.Credentials{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	data, ok := up.Right()
	require.True(t, ok)
	assert.Equal(t, usecase.UserData{ID: "u1", Email: "a@x.com"}, data)

	in, err := signIn.Perform(context.Background(), usecase.Credentials{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	failure, ok := in.Left()
	require.True(t, ok)
	assert.Equal(t, usecase.KindUserNotFound, failure.Kind)
}
