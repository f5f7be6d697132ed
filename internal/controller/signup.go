package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/authgate/pkg/usecase"
)

// SignUpController creates accounts. An existing account yields 403.
type SignUpController struct {
	pipeline pipeline[usecase.UserData]
}

func NewSignUpController(signUp usecase.SignUp, logger zerolog.Logger) *SignUpController {
	return &SignUpController{
		pipeline: pipeline[usecase.UserData]{
			operation: "sign_up",
			required:  credentialFields,
			forbidden: []usecase.Kind{usecase.KindExistingUser},
			success:   Created,
			perform: func(ctx context.Context, in usecase.Credentials) (usecase.SignUpResult, error) {
				return signUp.Perform(ctx, in)
			},
			logger: logger,
		},
	}
}

func (c *SignUpController) Handle(ctx context.Context, req HTTPRequest) HTTPResponse {
	return c.pipeline.run(ctx, req)
}
