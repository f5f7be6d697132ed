package controller

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/authgate/internal/validation"
	"github.com/deppfellow/authgate/pkg/either"
	"github.com/deppfellow/authgate/pkg/usecase"
)

var errNilFailure = errors.New("use case returned a failure result without a failure value")

// pipeline is the request flow shared by every controller:
// validate, perform, then map the result to one response.
type pipeline[S any] struct {
	operation string
	required  []string
	// forbidden lists the failure kinds answered with 403, checked in order.
	forbidden []usecase.Kind
	success   func(body any) HTTPResponse
	perform   func(ctx context.Context, in usecase.Credentials) (either.Either[*usecase.Failure, S], error)
	logger    zerolog.Logger
}

func (p pipeline[S]) run(ctx context.Context, req HTTPRequest) (resp HTTPResponse) {
	start := time.Now()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := p.requestLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			err := errors.Errorf("panic in %s: %v", p.operation, r)
			resp = ServerError(err)
			logger.Error().Stack().Err(err).
				Str("outcome", "fault").
				Int("status", resp.StatusCode).
				Dur("duration", time.Since(start)).
				Msg("controller recovered from panic")
		}
	}()

	if missing := MissingParams(req, p.required); len(missing) > 0 {
		resp = BadRequest(usecase.MissingParam(strings.Join(missing, ", ")), validation.FieldErrors(missing)...)
		logger.Warn().
			Str("outcome", "invalid").
			Strs("missing", missing).
			Int("status", resp.StatusCode).
			Msg("request rejected before use case")
		return resp
	}

	result, err := p.perform(ctx, credentials(req))
	if err != nil {
		resp = ServerError(err)
		logger.Error().Err(err).
			Str("outcome", "fault").
			Int("status", resp.StatusCode).
			Dur("duration", time.Since(start)).
			Msg("use case failed")
		return resp
	}

	resp = either.Fold(result, p.onFailure, func(value S) HTTPResponse {
		return p.success(value)
	})

	event := logger.Info()
	if resp.StatusCode >= 500 {
		event = logger.Error()
	} else if resp.StatusCode >= 400 {
		event = logger.Warn()
	}
	if failure, ok := result.Left(); ok && failure != nil {
		event = event.Str("failure_kind", failure.Code())
	}
	event.
		Str("outcome", outcome(result.IsRight(), resp.StatusCode)).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("use case completed")

	return resp
}

func (p pipeline[S]) onFailure(failure *usecase.Failure) HTTPResponse {
	if failure == nil {
		return ServerError(errNilFailure)
	}
	if slices.Contains(p.forbidden, failure.Kind) {
		return Forbidden(failure)
	}
	return BadRequest(failure)
}

// requestLogger prefers the request-scoped logger stored on ctx.
func (p pipeline[S]) requestLogger(ctx context.Context) zerolog.Logger {
	logger := p.logger
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		logger = *l
	}
	return logger.With().Str("operation", p.operation).Logger()
}

func outcome(success bool, status int) string {
	switch {
	case success:
		return "success"
	case status >= 500:
		return "fault"
	default:
		return "failure"
	}
}
