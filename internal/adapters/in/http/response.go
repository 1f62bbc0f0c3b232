package http

import (
	"errors"
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/core/domain/model/wallet"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Response is the uniform envelope every endpoint returns. Clients rely on
// the success flag and message being present on both success and failure.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(ctx echo.Context, code int, message string, data interface{}) error {
	return ctx.JSON(code, Response{
		Success: code < http.StatusBadRequest,
		Message: message,
		Data:    data,
	})
}

// respondError maps a domain or application error to the status code
// contract and returns the failure envelope.
func respondError(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}
	return ctx.JSON(code, Response{
		Success: false,
		Message: message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ports.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, ports.ErrForbidden),
		errors.Is(err, commands.ErrNotAssignedRider):
		return http.StatusForbidden

	case errors.Is(err, commands.ErrParcelNotFound),
		errors.Is(err, commands.ErrRiderNotFound),
		errors.Is(err, commands.ErrWalletNotFound),
		errors.Is(err, queries.ErrTrackingIDUnknown),
		errors.Is(err, queries.ErrParcelUnknown),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, parcel.ErrInvalidTransition),
		errors.Is(err, parcel.ErrParcelAlreadyAssigned),
		errors.Is(err, rider.ErrRiderBusy),
		errors.Is(err, wallet.ErrInsufficientBalance),
		errors.Is(err, commands.ErrRiderAlreadyRegistered),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
