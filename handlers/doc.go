// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Tally API.

# Handler Types

  - ListHandler: List creation, items, and per-participant contribution reads
  - ItemHandler: Votes, removal, and item reads
  - SessionHandler: Session id issuance

Handlers wrap a shared *tally.Engine:

	itemHandler := handlers.NewItemHandler(engine, cfg, metrics)

# Votes

A vote is +1 or -1 from the participant named by the X-Session-ID header.
A participant may only retract votes they still hold; otherwise the request
fails with 409 Conflict and nothing changes.

	POST /items/{id}/vote      {"delta": -1}
	POST /items/{id}/increment
	POST /items/{id}/decrement

Vote and removal calls that hit a transient database failure (serialization
failure, deadlock, busy database) are run again up to cfg.RetryAttempts times.

# Removal

DELETE /items/{id} answers {"success": true} only when the item existed and
its total was exactly zero. Any other case answers {"success": false}.
*/
package handlers
