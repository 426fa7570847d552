package httperr

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Code    int
	Message error
}

func NewHTTPError(code int, message error) HTTPError {
	return HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message.Error()
}

var (
	ErrRequestPayloadEmpty = NewHTTPError(
		http.StatusBadRequest,
		errors.New("request payload is empty"),
	)

	ErrRequestPayloadInvalid = NewHTTPError(
		http.StatusBadRequest,
		errors.New("request payload is invalid"),
	)

	ErrPinInvalid = NewHTTPError(
		http.StatusUnauthorized,
		errors.New("pin invalid"),
	)
)
