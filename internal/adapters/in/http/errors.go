package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// statusFromError maps domain errors to HTTP status codes: missing objects
// to 404, authorization and ownership failures to 403, lifecycle conflicts
// to 409 and validation failures to 400.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, access.ErrNotAdmin),
		errors.Is(err, access.ErrNotApprovedSubmitter),
		errors.Is(err, access.ErrNotApprovedValidator),
		errors.Is(err, order.ErrNotOrderSeller),
		errors.Is(err, order.ErrNotOrderBuyer),
		errors.Is(err, order.ErrNotAssignedCourier):
		return http.StatusForbidden
	case errors.Is(err, order.ErrOrderAlreadyProcessed),
		errors.Is(err, order.ErrOrderAlreadyFinalized),
		errors.Is(err, order.ErrCompletionNotRequested),
		errors.Is(err, order.ErrDeliveryNotCompleted):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
