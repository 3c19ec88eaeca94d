// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/metrics"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/session"
	"github.com/danielhkuo/quickly-tally/tally"
)

type ItemHandler struct {
	engine  *tally.Engine
	cfg     cliparse.Config
	metrics *metrics.Metrics
}

func NewItemHandler(engine *tally.Engine, cfg cliparse.Config, m *metrics.Metrics) *ItemHandler {
	return &ItemHandler{engine: engine, cfg: cfg, metrics: m}
}

// GetItem handles GET /items/:id
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}

	item, err := h.engine.GetItem(r.Context(), itemID)
	if err != nil {
		writeEngineError(w, err, "get item")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, item)
}

// Vote handles POST /items/:id/vote with body {"delta": 1 | -1}
func (h *ItemHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, middleware.BodyErrorMessage(err))
		return
	}

	h.applyVote(w, r, req.Delta)
}

// Increment handles POST /items/:id/increment
func (h *ItemHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.applyVote(w, r, models.DeltaIncrement)
}

// Decrement handles POST /items/:id/decrement
func (h *ItemHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.applyVote(w, r, models.DeltaDecrement)
}

func (h *ItemHandler) applyVote(w http.ResponseWriter, r *http.Request, delta int) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}

	sessionID, err := session.FromRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}

	item, err := withRetry(r.Context(), h.cfg.RetryAttempts, h.metrics, func() (models.Item, error) {
		return h.engine.ApplyVote(r.Context(), itemID, sessionID, delta)
	})
	h.metrics.ObserveVote(delta, voteOutcome(err))
	if err != nil {
		writeEngineError(w, err, "apply vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, item)
}

// RemoveItem handles DELETE /items/:id
// Not removing (missing item, non-zero total) is a normal outcome: 200 with success=false
func (h *ItemHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}

	removed, err := withRetry(r.Context(), h.cfg.RetryAttempts, h.metrics, func() (bool, error) {
		return h.engine.RemoveItem(r.Context(), itemID)
	})
	if err != nil {
		h.metrics.ObserveRemoval(metrics.OutcomeError)
		writeEngineError(w, err, "remove item")
		return
	}

	if removed {
		h.metrics.ObserveRemoval(metrics.OutcomeRemoved)
	} else {
		h.metrics.ObserveRemoval(metrics.OutcomeNotRemoved)
	}

	middleware.JSONResponse(w, http.StatusOK, models.RemoveItemResponse{Success: removed})
}

// GetContribution handles GET /items/:id/contribution
func (h *ItemHandler) GetContribution(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}

	sessionID, err := session.FromRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}

	count, err := h.engine.Contribution(r.Context(), itemID, sessionID)
	if err != nil {
		writeEngineError(w, err, "get contribution")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ItemContribution{
		ItemID: itemID,
		Count:  count,
	})
}

func voteOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeApplied
	case errors.Is(err, tally.ErrItemNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, tally.ErrNoContributionToRetract):
		return metrics.OutcomeNoRetract
	case errors.Is(err, tally.ErrInvalidDelta), errors.Is(err, tally.ErrInvalidInput):
		return metrics.OutcomeInvalid
	}
	return metrics.OutcomeError
}
