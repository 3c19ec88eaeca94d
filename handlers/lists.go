// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/session"
	"github.com/danielhkuo/quickly-tally/tally"
)

type ListHandler struct {
	engine *tally.Engine
	cfg    cliparse.Config
}

func NewListHandler(engine *tally.Engine, cfg cliparse.Config) *ListHandler {
	return &ListHandler{engine: engine, cfg: cfg}
}

// CreateList handles POST /lists
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req models.CreateListRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, middleware.BodyErrorMessage(err))
		return
	}

	list, err := h.engine.CreateList(r.Context(), req.Title)
	if err != nil {
		writeEngineError(w, err, "create list")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateListResponse{
		List:     list,
		ShareURL: h.shareURL(list.ID),
	})
}

// GetList handles GET /lists/:id
// Returns the list with its items in creation order
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")
	if listID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "list_id is required")
		return
	}

	list, err := h.engine.GetList(r.Context(), listID)
	if err != nil {
		writeEngineError(w, err, "get list")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// AddItem handles POST /lists/:id/items
func (h *ListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")
	if listID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "list_id is required")
		return
	}

	var req models.CreateItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, middleware.BodyErrorMessage(err))
		return
	}

	item, err := h.engine.CreateItem(r.Context(), listID, req.Name)
	if err != nil {
		writeEngineError(w, err, "create item")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, item)
}

// GetContributions handles GET /lists/:id/contributions
// Returns the caller's count on every item of the list (0 where they never voted)
func (h *ListHandler) GetContributions(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")
	if listID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "list_id is required")
		return
	}

	sessionID, err := session.FromRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}

	contributions, err := h.engine.ListContributions(r.Context(), listID, sessionID)
	if err != nil {
		writeEngineError(w, err, "list contributions")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListContributionsResponse{
		ListID:        listID,
		Contributions: contributions,
	})
}

func (h *ListHandler) shareURL(listID string) string {
	return strings.TrimRight(h.cfg.ShareBaseURL, "/") + "/lists/" + listID
}
