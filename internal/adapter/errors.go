package adapter

import "errors"

var (
	ErrEmptyToken        = errors.New("empty api token")
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrTooManyRequests   = errors.New("too many requests")
	ErrServerUnavailable = errors.New("server unavailable")
	ErrUnexpectedPayload = errors.New("unexpected sync payload")
)
