// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Factify server.

Factify is a crowdsourced facts feed. Visitors browse short sourced facts by
category, sort them by recency or up-votes, vote on them with an optional
comment, submit new facts, and share a direct link to one fact.

# Starting the Server

Against a hosted REST backend (PostgREST/Supabase):

	SUPABASE_URL=https://xyz.supabase.co/rest/v1 SUPABASE_KEY=... go run .

Against a local database:

	go run . -t sqlite -d "file:facts.db?_pragma=foreign_keys(1)"
	go run . -t postgres -d "postgres://..."

Variables can also come from a .env file in the working directory.

# Configuration

Required settings:

  - SUPABASE_URL (-u) and SUPABASE_KEY (-api-key) for the rest backend
  - DATABASE_URL (-d) for the sqlite and postgres backends

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - BACKEND_TYPE (-t): rest, sqlite or postgres (default: rest)
  - SUPABASE_TOKEN (-token): Bearer token (default: the API key)
  - REDIS_URL (-redis): Persist sort preferences in Redis
  - BASE_URL (-base-url): Public URL used in share links
  - TEXT_LIMIT (-text-limit): Maximum fact length (default: 300)
  - DISPLAY_TZ (-tz): Time zone for dates (default: UTC)
  - ATOMIC_VOTES (-atomic-votes): Single-statement increments on SQL backends

# Architecture

  - feed: filter, sort and decorate facts, attach comments
  - vote: read-modify-write vote with optional comment
  - submission: new fact validation
  - backend: the data store contract and the REST client
  - db: the same contract over SQLite or Postgres
  - prefs: per-session sort preference (memory or Redis)
  - render: embedded HTML templates
  - handlers, router, middleware: HTTP surface
  - models: shared types
  - auth: backend credentials
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
