// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is a SQL implementation of the backend contract, used for local
development (BACKEND_TYPE=sqlite or postgres) and by the test suite.

# Connecting

	conn, err := db.Open(db.DialectSQLite, "file:factify.db")
	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}
	store := db.NewStore(conn)

Postgres uses lib/pq and SQLite uses the pure-Go modernc driver, so no cgo
is needed. SQLite connections are capped at one so that :memory:
databases are shared by every query.

CreateSchema is safe to call multiple times - uses IF NOT EXISTS.

# Tables

Column names match the hosted backend so the same JSON structs apply:

  - facts: id, text, source, category, "votesUp", "votesDown", created_at
  - comments: id, fact_id, comment, vote_type, created_at

# Relationships

	facts 1──* comments

comments.fact_id uses ON DELETE CASCADE (enforced on SQLite only when the
foreign_keys pragma is on).

# Atomic Increments

Store also implements backend.Incrementer:

	n, err := store.IncrementVotes(ctx, id, models.VoteUp)

which runs UPDATE … SET "votesUp" = "votesUp" + 1 … RETURNING in one
statement. The hosted REST backend has no such call.
*/
package db
