package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fineract-prequalification/internal/domain/checklist"
	"fineract-prequalification/internal/domain/loan"
	"fineract-prequalification/internal/domain/prequalification"
	"fineract-prequalification/internal/domain/product"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, prequalification.ErrNotFound),
		errors.Is(err, prequalification.ErrMemberNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, loan.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, checklist.ErrDataIntegrity):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeError renders a usecase error. Internal errors are not echoed to the client.
func writeError(c echo.Context, err error) error {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}

func validationError(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
}
