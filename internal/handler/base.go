package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"

	"github.com/deppfellow/authgate/internal/controller"
	"github.com/deppfellow/authgate/internal/errs"
	"github.com/deppfellow/authgate/internal/middleware"
	"github.com/deppfellow/authgate/internal/server"
)

// Handler is the base handler type that holds shared application dependencies.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// bindRequest decodes the JSON object body. An empty body yields an empty map.
func bindRequest(c echo.Context) (controller.HTTPRequest, error) {
	body := map[string]any{}

	if err := c.Bind(&body); err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) && echoErr.Code == echo.ErrUnsupportedMediaType.Code {
			return controller.HTTPRequest{}, err
		}
		return controller.HTTPRequest{}, errs.NewBadRequestError("Request body must be a JSON object", false, nil, nil)
	}

	return controller.HTTPRequest{Body: body}, nil
}

// Handle adapts a controller to Echo.
//
// It is the shared execution pipeline for every controller route:
//
// - request body decoding
// - structured logging (with request context)
// - New Relic attributes and error reporting
// - timing (handler duration, total duration)
// - response writing, with fault detail stripped unless enabled
//
// Usage:
//
//	router.POST("/x", handler.Handle(h, myController))
func Handle(h Handler, ctrl controller.Controller) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		route := c.Path()

		txn := newrelic.FromContext(c.Request().Context())
		if txn != nil {
			txn.AddAttribute("handler.name", route)
		}

		logger := middleware.GetLogger(c).With().
			Str("operation", "handler").
			Str("method", c.Request().Method).
			Str("route", route).
			Logger()

		logger.Info().Msg("handling request")

		// ---------------- Decoding phase ----------------------------------------
		req, err := bindRequest(c)
		if err != nil {
			logger.Error().
				Err(err).
				Msg("request decoding failed")

			if txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(errors.WithStack(err)))
				txn.AddAttribute("decode.status", "failed")
			}

			// Let the global error handler format the response.
			return err
		}

		// ---------------- Controller phase --------------------------------------
		handlerStart := time.Now()
		resp := ctrl.Handle(c.Request().Context(), req)
		handlerDuration := time.Since(handlerStart)

		body := resp.Body
		if httpErr, ok := body.(*errs.HTTPError); ok {
			if resp.StatusCode >= 500 && txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(errors.New(httpErr.Detail)))
			}
			if !h.server.Config.Server.ExposeFaultDetail {
				body = httpErr.WithoutDetail()
			}
		}

		totalDuration := time.Since(start)

		if txn != nil {
			txn.AddAttribute("handler.status_code", resp.StatusCode)
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}

		logger.Info().
			Int("status", resp.StatusCode).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("request completed")

		return c.JSON(resp.StatusCode, body)
	}
}
