package apperrors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Kind classifies application failures so controllers can map them to HTTP
// status codes without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindAuth
	KindExternal
)

type appError struct {
	kind Kind
	err  error
}

func (e appError) Error() string {
	return e.err.Error()
}

func (e appError) Unwrap() error {
	return e.err
}

func New(kind Kind, message string) error {
	return appError{kind: kind, err: errors.New(message)}
}

func Newf(kind Kind, format string, args ...interface{}) error {
	return appError{kind: kind, err: errors.Errorf(format, args...)}
}

// Wrap attaches a kind to an existing error, keeping its cause chain.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return appError{kind: kind, err: errors.Wrap(err, message)}
}

func KindOf(err error) Kind {
	var appErr appError
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindInternal
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// StatusCode maps an error to the HTTP status the API responds with.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindAuth:
		return fiber.StatusUnauthorized
	case KindExternal:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
