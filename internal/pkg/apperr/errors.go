package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound      = "NOT_FOUND"
	CodeNotAcceptable = "NOT_ACCEPTABLE"
	CodeInternalError = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrRouteNotFound is returned when a page route does not exist.
	ErrRouteNotFound = New(fiber.StatusNotFound, "ROUTE_NOT_FOUND", "route not found")

	// ErrTopicNotFound is returned when a soil moisture topic does not exist.
	ErrTopicNotFound = New(fiber.StatusNotFound, "TOPIC_NOT_FOUND", "topic not found: expect one of surface, root_zone, total")

	// ErrGroupNotFound is returned when a tab group is not rendered on a page under the given selection.
	ErrGroupNotFound = New(fiber.StatusNotFound, "GROUP_NOT_FOUND", "tab group not found on this page")

	// ErrNotAcceptable is returned when the client does not accept any representation the endpoint offers.
	ErrNotAcceptable = New(fiber.StatusNotAcceptable, CodeNotAcceptable, "no acceptable representation")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]any

// AppError is an error meant to be shown to the client, carrying its HTTP status.
type AppError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e AppError) Msg(format string, parts ...any) *AppError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e AppError) WithExtras(extras Extras) *AppError {
	e.Extras = &extras
	return &e
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// Is matches any AppError with the same error code, so that copies made by Msg
// and WithExtras still match their origin with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.ErrorCode == e.ErrorCode
}
