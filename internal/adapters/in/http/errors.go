package http

import (
	"errors"
	"net/http"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// statusFor maps an application error to its HTTP status. Checks run from the
// most specific kind to the generic field errors, since a single error may wrap
// several sentinels.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrSessionClosed):
		return http.StatusGone
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, ports.ErrOrderNotFound),
		errors.Is(err, order.ErrLineItemIndexOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, ports.ErrGatewayFailure):
		return http.StatusBadGateway
	case errors.Is(err, order.ErrOrderLocked),
		errors.Is(err, order.ErrOrderNumberImmutable),
		errors.Is(err, catalog.ErrCatalogUnavailable):
		return http.StatusConflict
	case errors.Is(err, order.ErrOrderInvalid),
		errors.Is(err, order.ErrInvalidLineItem),
		errors.Is(err, order.ErrInvalidOrderNumber),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageFor returns the single message shown to the client. Save-time
// validation reports only the rule that failed.
func messageFor(err error, status int) string {
	var invalid *order.OrderInvalidError
	if errors.As(err, &invalid) {
		return invalid.Reason
	}
	if status == http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}
