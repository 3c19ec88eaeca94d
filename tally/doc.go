// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally implements the vote aggregation engine.

A participant, identified only by an opaque session id, holds one
contribution per item. Votes move that contribution by +1 or -1; the item's
total_count is always the sum of all contributions to it.

# Voting

	item, err := engine.ApplyVote(ctx, itemID, sessionID, models.DeltaIncrement)

Within one transaction ApplyVote locks the item, reads the participant's
contribution, inserts or updates it, recomputes the total with SUM over every
contribution row and stores the result. The total is never patched with the
delta.

Failures:

  - ErrInvalidDelta: delta is not +1 or -1
  - ErrItemNotFound: no item with the id
  - ErrNoContributionToRetract: delta is -1 and the participant's count is 0
    or they never voted on the item

Nothing is written when a call fails. Storage errors are returned wrapped and
are never retried here.

# Removal

	removed, err := engine.RemoveItem(ctx, itemID)

An item is removed, together with its contributions, only when its total is
exactly 0. Otherwise, or when the item does not exist, removed is false and
err is nil.

# Reading Contributions

Contribution and ListContributions report a participant's counts; a missing
contribution reads as 0.

# Negative Totals

Only the acting participant's own count is guarded. There is no floor on
total_count itself.
*/
package tally
