// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/handlers"
	"github.com/danielhkuo/quickly-tally/metrics"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/tally"
)

// NewRouter wires every endpoint. Service counters are registered on reg and
// served from GET /metrics.
func NewRouter(engine *tally.Engine, cfg cliparse.Config, reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	m := metrics.New(reg)

	// Initialize handlers
	listHandler := handlers.NewListHandler(engine, cfg)
	itemHandler := handlers.NewItemHandler(engine, cfg, m)
	sessionHandler := handlers.NewSessionHandler()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
		})
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// Sessions
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))

	// Lists
	mux.HandleFunc("POST /lists", middleware.WithLogging(listHandler.CreateList))
	mux.HandleFunc("GET /lists/{id}", middleware.WithLogging(listHandler.GetList))
	mux.HandleFunc("POST /lists/{id}/items", middleware.WithLogging(listHandler.AddItem))
	mux.HandleFunc("GET /lists/{id}/contributions", middleware.WithLogging(listHandler.GetContributions))

	// Items and votes
	mux.HandleFunc("GET /items/{id}", middleware.WithLogging(itemHandler.GetItem))
	mux.HandleFunc("DELETE /items/{id}", middleware.WithLogging(itemHandler.RemoveItem))
	mux.HandleFunc("POST /items/{id}/vote", middleware.WithLogging(itemHandler.Vote))
	mux.HandleFunc("POST /items/{id}/increment", middleware.WithLogging(itemHandler.Increment))
	mux.HandleFunc("POST /items/{id}/decrement", middleware.WithLogging(itemHandler.Decrement))
	mux.HandleFunc("GET /items/{id}/contribution", middleware.WithLogging(itemHandler.GetContribution))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-tally API v1"))
	})

	return mux
}
