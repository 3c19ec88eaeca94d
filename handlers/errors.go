// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"

	"github.com/danielhkuo/quickly-tally/metrics"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/store"
	"github.com/danielhkuo/quickly-tally/tally"
)

// writeEngineError maps engine errors to HTTP responses
func writeEngineError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, tally.ErrItemNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, tally.ErrListNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "List not found")
	case errors.Is(err, tally.ErrNoContributionToRetract):
		middleware.ErrorResponse(w, http.StatusConflict, "No contribution to retract")
	case errors.Is(err, tally.ErrInvalidDelta), errors.Is(err, tally.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("failed to "+action, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// withRetry runs an engine call again while the database reports a transient
// failure (serialization failure, deadlock, busy). Each attempt is a new
// transaction; domain errors are returned at once.
func withRetry[T any](ctx context.Context, attempts int, m *metrics.Metrics, fn func() (T, error)) (T, error) {
	if attempts < 1 {
		attempts = 1
	}
	return retry.DoWithData(fn,
		retry.Context(ctx),
		retry.Attempts(uint(attempts)),
		retry.Delay(10*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(store.IsTransient),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			m.ObserveRetry()
			slog.Warn("retrying after transient database error", "attempt", n+1, "error", err)
		}),
	)
}
