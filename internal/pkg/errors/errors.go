package errors

import (
	"errors"
	"net/http"
)

// AppError carries an HTTP status code alongside the message so handlers
// can translate business failures without switching on error strings.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func newError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func BadRequest(message string) *AppError {
	return newError(http.StatusBadRequest, message)
}

func UnauthorizedError(message string) *AppError {
	return newError(http.StatusUnauthorized, message)
}

func NotFound(message string) *AppError {
	return newError(http.StatusNotFound, message)
}

func Conflict(message string) *AppError {
	return newError(http.StatusConflict, message)
}

func UnprocessableEntity(message string) *AppError {
	return newError(http.StatusUnprocessableEntity, message)
}

func InternalServerError(message string) *AppError {
	return newError(http.StatusInternalServerError, message)
}

// Booking domain errors. These are returned to callers as typed results,
// never raised as panics.
var (
	ErrAlreadyLocked    = Conflict("someone else is booking this room, please try again")
	ErrAlreadyPaid      = UnprocessableEntity("booking is already paid")
	ErrInvalidStatus    = UnprocessableEntity("booking is not payable in its current status")
	ErrCapacityExceeded = UnprocessableEntity("no rooms available for the selected dates")
	ErrBookingNotFound  = NotFound("booking not found")
)

// GetCode extracts the HTTP status for an error, defaulting to 500.
func GetCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
