// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Connections

Open selects the driver from the database type:

	conn, err := db.Open(db.TypePostgres, "postgres://...")
	conn, err := db.Open(db.TypeSQLite, "file:tally.db")

PostgreSQL uses github.com/lib/pq. SQLite uses the pure Go modernc.org/sqlite
driver with foreign keys enabled and the pool capped at one connection.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - lists: list title and creation time
  - items: votable entries with the cached total_count
  - contributions: one row per (item_id, session_id)

# Relationships

	lists 1──* items
	items 1──* contributions

All foreign keys use ON DELETE CASCADE. The contributions primary key is the
natural (item_id, session_id) pair, so a participant can never hold two rows
for the same item.
*/
package db
