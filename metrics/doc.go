// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters for votes, item removals and
// transaction retries. Methods on a nil *Metrics are no-ops.
package metrics
