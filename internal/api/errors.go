package api

import (
	"errors"
	"net/http"

	"github.com/samcharles93/elfscope/pkg/ehdr"
)

var ErrInvalidRequest = errors.New("invalid_request")

type invalidRequestError struct {
	msg string
}

func (e invalidRequestError) Error() string { return e.msg }

func (e invalidRequestError) Unwrap() error { return ErrInvalidRequest }

func newInvalidRequest(msg string) error {
	return invalidRequestError{msg: msg}
}

// decodeErrorCode maps a decode failure to its HTTP status and error code.
func decodeErrorCode(err error) (int, string) {
	switch {
	case errors.Is(err, ehdr.ErrTruncatedInput):
		return http.StatusUnprocessableEntity, "truncated_input"
	case errors.Is(err, ehdr.ErrUnsupportedEncoding):
		return http.StatusUnprocessableEntity, "unsupported_encoding"
	case errors.Is(err, ehdr.ErrInvalidMagic):
		return http.StatusUnprocessableEntity, "invalid_magic"
	case errors.Is(err, ehdr.ErrUnsupportedClass):
		return http.StatusUnprocessableEntity, "unsupported_class"
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, "invalid_request"
	default:
		return http.StatusInternalServerError, "server_error"
	}
}
