package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-task-sync/internal/adapter"
	"github.com/MKhiriev/go-task-sync/internal/app"
	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/service"
	"github.com/MKhiriev/go-task-sync/internal/store"
)

var ErrCopyFailed = errors.New("copy to clipboard failed")

// userMessage translates err into the line printed to the terminal. Errors
// without a known cause are printed as they are.
func userMessage(err error) string {
	var msg string

	switch {
	case errors.Is(err, config.ErrMissingAPIToken), errors.Is(err, adapter.ErrEmptyToken):
		return app.MsgMissingToken
	case errors.Is(err, config.ErrInvalidTodoistConfigs):
		msg = app.MsgInvalidConfig
	case errors.Is(err, config.ErrUnsupportedConfigFormat):
		msg = app.MsgUnsupportedConfigFormat
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgUnauthorized
	case errors.Is(err, adapter.ErrForbidden):
		return app.MsgForbidden
	case errors.Is(err, adapter.ErrBadRequest):
		msg = app.MsgBadRequest
	case errors.Is(err, adapter.ErrNotFound):
		msg = app.MsgEndpointNotFound
	case errors.Is(err, adapter.ErrTooManyRequests):
		return app.MsgTooManyRequests
	case errors.Is(err, adapter.ErrServerUnavailable):
		return app.MsgServerUnavailable
	case errors.Is(err, adapter.ErrUnexpectedPayload):
		msg = app.MsgUnexpectedPayload
	case errors.Is(err, store.ErrKeyNotFound):
		msg = app.MsgElementNotFound
	case errors.Is(err, store.ErrFieldNotFound):
		msg = app.MsgFieldNotFound
	case errors.Is(err, ErrInvalidWhere):
		msg = app.MsgInvalidWhere
	case errors.Is(err, service.ErrInvalidExpression):
		msg = app.MsgInvalidExpression
	case errors.Is(err, ErrCopyFailed):
		msg = app.MsgCopyFailed
	case errors.Is(err, context.DeadlineExceeded):
		return app.MsgTimeout
	case errors.Is(err, context.Canceled):
		return app.MsgCancelled
	default:
		return err.Error()
	}

	return msg + " (" + err.Error() + ")"
}
