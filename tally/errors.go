// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "github.com/cockroachdb/errors"

var (
	ErrItemNotFound            = errors.New("item not found")
	ErrListNotFound            = errors.New("list not found")
	ErrNoContributionToRetract = errors.New("no contribution to retract")
	ErrInvalidDelta            = errors.New("delta must be +1 or -1")
	ErrInvalidInput            = errors.New("invalid input")
)
