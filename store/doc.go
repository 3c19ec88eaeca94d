// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data access layer for lists, items and contributions.

Queries are built with squirrel. The placeholder format follows the database
type: $1 for PostgreSQL and ? for SQLite.

# Transactions

Every method takes a Querier, so the same call works on the pool or inside a
transaction:

	err := st.WithTx(ctx, func(q store.Querier) error {
		item, found, err := st.GetItem(ctx, q, itemID, true)
		...
	})

PostgreSQL transactions run at READ COMMITTED. GetItem with forUpdate adds
FOR UPDATE so that concurrent writers to the same item queue on the row lock.

# Lookups

Single-row reads return (row, found, err); a missing row is found=false with
a nil error.

# Errors

Driver errors are wrapped with the failing operation. IsTransient detects
PostgreSQL serialization failures and deadlocks and SQLite busy/locked
results, which callers may retry.
*/
package store
