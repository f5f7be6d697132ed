// Package usecase declares the contract between the HTTP boundary and the
// account use cases supplied by the host application.
//
// Implementations return expected business failures as the left side of
// an either.Either and reserve the error return for unexpected faults.
package usecase

import (
	"context"

	"github.com/deppfellow/authgate/pkg/either"
)

// Credentials is the input of both sign-up and sign-in.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserData describes a newly created account.
type UserData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthenticationResult is returned on successful credential verification.
type AuthenticationResult struct {
	AccessToken string `json:"accessToken"`
	ID          string `json:"id"`
}

// SignUpResult is the outcome of an account creation attempt.
type SignUpResult = either.Either[*Failure, UserData]

// SignInResult is the outcome of a credential verification attempt.
type SignInResult = either.Either[*Failure, AuthenticationResult]

// SignUp creates an account.
type SignUp interface {
	Perform(ctx context.Context, input Credentials) (SignUpResult, error)
}

// SignIn verifies credentials.
type SignIn interface {
	Perform(ctx context.Context, input Credentials) (SignInResult, error)
}

// SignUpFunc adapts a plain function to SignUp.
type SignUpFunc func(ctx context.Context, input Credentials) (SignUpResult, error)

func (f SignUpFunc) Perform(ctx context.Context, input Credentials) (SignUpResult, error) {
	return f(ctx, input)
}

// SignInFunc adapts a plain function to SignIn.
type SignInFunc func(ctx context.Context, input Credentials) (SignInResult, error)

func (f SignInFunc) Perform(ctx context.Context, input Credentials) (SignInResult, error) {
	return f(ctx, input)
}
