// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Dialect selects the SQL flavour of the schema and driver
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// CreateSchema creates the facts and comments tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect Dialect) error {
	var schema string
	switch dialect {
	case DialectPostgres:
		schema = postgresSchema
	case DialectSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Column names match the hosted backend, including the camelCase counters
const postgresSchema = `
-- Facts
CREATE TABLE IF NOT EXISTS facts (
    id BIGSERIAL PRIMARY KEY,
    text TEXT NOT NULL,
    source TEXT NOT NULL,
    category TEXT NOT NULL,
    "votesUp" INTEGER NOT NULL DEFAULT 0 CHECK ("votesUp" >= 0),
    "votesDown" INTEGER NOT NULL DEFAULT 0 CHECK ("votesDown" >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_facts_category ON facts(category);

-- Comments
CREATE TABLE IF NOT EXISTS comments (
    id BIGSERIAL PRIMARY KEY,
    fact_id BIGINT NOT NULL REFERENCES facts(id) ON DELETE CASCADE,
    comment TEXT NOT NULL,
    vote_type TEXT NOT NULL CHECK (vote_type IN ('votesUp', 'votesDown')),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_comments_fact_id ON comments(fact_id);
`

const sqliteSchema = `
-- Facts
CREATE TABLE IF NOT EXISTS facts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL,
    source TEXT NOT NULL,
    category TEXT NOT NULL,
    "votesUp" INTEGER NOT NULL DEFAULT 0 CHECK ("votesUp" >= 0),
    "votesDown" INTEGER NOT NULL DEFAULT 0 CHECK ("votesDown" >= 0),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_facts_category ON facts(category);

-- Comments
CREATE TABLE IF NOT EXISTS comments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    fact_id INTEGER NOT NULL REFERENCES facts(id) ON DELETE CASCADE,
    comment TEXT NOT NULL,
    vote_type TEXT NOT NULL CHECK (vote_type IN ('votesUp', 'votesDown')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_comments_fact_id ON comments(fact_id);
`
