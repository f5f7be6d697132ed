package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/authgate/pkg/usecase"
)

// SignInController verifies credentials. A wrong password yields 403; every
// other failure, an unknown user included, yields 400.
type SignInController struct {
	pipeline pipeline[usecase.AuthenticationResult]
}

func NewSignInController(signIn usecase.SignIn, logger zerolog.Logger) *SignInController {
	return &SignInController{
		pipeline: pipeline[usecase.AuthenticationResult]{
			operation: "sign_in",
			required:  credentialFields,
			forbidden: []usecase.Kind{usecase.KindWrongPassword},
			success:   OK,
			perform: func(ctx context.Context, in usecase.Credentials) (usecase.SignInResult, error) {
				return signIn.Perform(ctx, in)
			},
			logger: logger,
		},
	}
}

func (c *SignInController) Handle(ctx context.Context, req HTTPRequest) HTTPResponse {
	return c.pipeline.run(ctx, req)
}
