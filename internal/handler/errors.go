package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/torn"
)

// mapError converts service errors into HTTP statuses and stable messages.
// Only the upstream numeric code is exposed; internal details stay in the logs.
func mapError(err error) (int, ErrorResponse) {
	if upErr, ok := torn.IsUpstreamError(err); ok {
		return http.StatusBadGateway, ErrorResponse{Error: ErrMsgUpstreamFailed + ": " + upErr.Message, Code: upErr.Code}
	}

	var storeErr *domain.StoreError
	switch {
	case errors.Is(err, domain.ErrNoCredential):
		return http.StatusPreconditionFailed, ErrorResponse{Error: ErrMsgNoCredential}
	case errors.As(err, &storeErr):
		return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgStoreFailed}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrorResponse{Error: ErrMsgRequestCancelled}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}
	}
}
