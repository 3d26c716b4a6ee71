package http

import (
	"errors"
	"net/http"

	"employee-loan-service/internal/adapter/middleware"
	"employee-loan-service/internal/domain/identity"
	"employee-loan-service/internal/domain/loan"
	"employee-loan-service/internal/domain/loantype"
	"employee-loan-service/internal/domain/repayment"

	"github.com/labstack/echo/v4"
)

// httpStatus maps the domain error taxonomy onto response codes. This is the
// only place the mapping lives; usecases never see HTTP.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, loantype.ErrNotFound),
		errors.Is(err, repayment.ErrNotFound),
		errors.Is(err, identity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrValidation),
		errors.Is(err, loantype.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, loan.ErrInvalidTransition),
		errors.Is(err, loan.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, loan.ErrOutstandingBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, identity.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	code := httpStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}

// actor fetches the resolved caller or writes a 401, returning ok=false.
func actor(c echo.Context) (identity.Actor, bool) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		_ = c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "actor not resolved"})
	}
	return a, ok
}
