// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON. Fields carry validator tags checked by
middleware.ParseJSONBody:

  - CreateListRequest: title
  - CreateItemRequest: name
  - VoteRequest: delta (+1 or -1)

# Response Types

  - CreateListResponse: list, share_url
  - RemoveItemResponse: success
  - CreateSessionResponse: session_id
  - ListContributionsResponse: list_id, contributions
  - HealthResponse: status, timestamp
  - ErrorResponse: error, message

# Domain Types

  - List: named container, immutable after creation
  - Item: votable entry with a cached total_count
  - ListWithItems: a list and its items in creation order
  - Contribution: one participant's net vote on one item
  - ItemContribution: the count part of a Contribution, keyed by item

The session id of a Contribution is never serialized.

# Constants

	DeltaIncrement = 1
	DeltaDecrement = -1
*/
package models
