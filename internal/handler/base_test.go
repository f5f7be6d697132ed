package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/authgate/internal/config"
	"github.com/deppfellow/authgate/internal/controller"
	"github.com/deppfellow/authgate/internal/errs"
	"github.com/deppfellow/authgate/internal/handler"
	"github.com/deppfellow/authgate/internal/server"
)

// recordingController returns resp and remembers the request it saw.
type recordingController struct {
	resp controller.HTTPResponse
	got  controller.HTTPRequest
	ctx  context.Context
}

func (r *recordingController) Handle(ctx context.Context, req controller.HTTPRequest) controller.HTTPResponse {
	r.ctx = ctx
	r.got = req
	return r.resp
}

func newHandler(t *testing.T, expose bool) handler.Handler {
	t.Helper()
	cfg := config.Default()
	cfg.Server.ExposeFaultDetail = expose
	logger := zerolog.Nop()
	s, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)
	return handler.NewHandler(s)
}

func serve(h echo.HandlerFunc, body string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	err := h(echo.New().NewContext(req, rec))
	return rec, err
}

func TestHandle_PassesDecodedBody(t *testing.T) {
	ctrl := &recordingController{resp: controller.OK(map[string]string{"id": "u1"})}

	rec, err := serve(handler.Handle(newHandler(t, false), ctrl), `{"email":"a@x.com","password":"p","extra":1}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"u1"}`, rec.Body.String())
	assert.Equal(t, map[string]any{"email": "a@x.com", "password": "p", "extra": float64(1)}, ctrl.got.Body)
	assert.NotNil(t, ctrl.ctx)
}

func TestHandle_RejectsNonObjectBody(t *testing.T) {
	ctrl := &recordingController{}

	_, err := serve(handler.Handle(newHandler(t, false), ctrl), `["email"]`)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Nil(t, ctrl.got.Body, "controller must not run")
}

func TestHandle_StripsFaultDetail(t *testing.T) {
	ctrl := &recordingController{resp: controller.ServerError(errors.New("secret stack"))}

	rec, err := serve(handler.Handle(newHandler(t, false), ctrl), `{}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "detail")

	// The controller's response value is left untouched.
	assert.Equal(t, "secret stack", ctrl.resp.Body.(*errs.HTTPError).Detail)
}

func TestHandle_KeepsFaultDetailWhenExposed(t *testing.T) {
	ctrl := &recordingController{resp: controller.ServerError(errors.New("secret stack"))}

	rec, err := serve(handler.Handle(newHandler(t, true), ctrl), `{}`)
	require.NoError(t, err)

	assert.Contains(t, rec.Body.String(), `"detail":"secret stack"`)
}

func TestJSONSerializerPreservesNumbers(t *testing.T) {
	ctrl := &recordingController{resp: controller.Created(map[string]string{"id": "u1"})}

	e := echo.New()
	e.JSONSerializer = handler.JSONSerializer{}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@x.com","password":12345678}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Handle(newHandler(t, false), ctrl)(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, json.Number("12345678"), ctrl.got.Body["password"])
}

func TestJSONSerializerRejectsMalformedBody(t *testing.T) {
	e := echo.New()
	e.JSONSerializer = handler.JSONSerializer{}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	var got map[string]any
	err := e.NewContext(req, httptest.NewRecorder()).Bind(&got)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
