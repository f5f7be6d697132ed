package controller

import (
	"net/http"

	"github.com/deppfellow/authgate/internal/errs"
	"github.com/deppfellow/authgate/pkg/usecase"
)

// OK wraps a successful read or verification.
func OK(body any) HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusOK, Body: body}
}

// Created wraps a successful resource creation.
func Created(body any) HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusCreated, Body: body}
}

// BadRequest renders a failure as a 400 body. fieldErrors is optional.
func BadRequest(failure *usecase.Failure, fieldErrors ...errs.FieldError) HTTPResponse {
	code := failure.Code()
	if len(fieldErrors) == 0 {
		fieldErrors = nil
	}
	return HTTPResponse{
		StatusCode: http.StatusBadRequest,
		Body:       errs.NewBadRequestError(failure.Error(), false, &code, fieldErrors),
	}
}

// Forbidden renders a failure as a 403 body.
func Forbidden(failure *usecase.Failure) HTTPResponse {
	code := failure.Code()
	return HTTPResponse{
		StatusCode: http.StatusForbidden,
		Body:       errs.NewForbiddenError(failure.Error(), false, &code),
	}
}

// ServerError renders an unexpected fault. The fault text is kept in the
// body's detail field.
func ServerError(err error) HTTPResponse {
	return HTTPResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       errs.NewServerError(err),
	}
}
