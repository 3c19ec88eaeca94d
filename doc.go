// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Tally API server.

Quickly Tally is a shared tally list: anonymous participants add items to a
list and vote them up or down. Each participant can only take back votes
they cast themselves, and an item can be removed once its total is zero.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 2022 -t sqlite -d tally.db

A .env file in the working directory is loaded first when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string, or a SQLite file with -t sqlite

Optional settings:

  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - PORT (-p): Server port (default: 2022)
  - SHARE_BASE_URL (-share-url): Frontend base for share links
  - VOTE_RETRY_ATTEMPTS (-retries): Attempts on transient database errors (default: 3)

# Architecture

  - tally: Vote engine and removal gate
  - store: SQL access for lists, items, and contributions
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, request validation
  - metrics: Prometheus counters
  - session: Participant session ids
  - models: Request/response types
  - db: Connections and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
