// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Tally API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(engine, cfg, prometheus.NewRegistry())

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Sessions:

	POST /sessions - Issue a participant session id

Lists:

	POST /lists                    - Create list
	GET  /lists/{id}               - List with items
	POST /lists/{id}/items         - Add item
	GET  /lists/{id}/contributions - Caller's count on every item

Items (vote and read routes require X-Session-ID):

	GET    /items/{id}              - Item with total_count
	DELETE /items/{id}              - Remove item when its total is zero
	POST   /items/{id}/vote         - Apply {"delta": 1 | -1}
	POST   /items/{id}/increment    - Apply +1
	POST   /items/{id}/decrement    - Retract one of the caller's votes
	GET    /items/{id}/contribution - Caller's count on the item

All handlers share one tally.Engine.
*/
package router
