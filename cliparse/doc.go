// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - BackendType: rest, sqlite or postgres (default: rest)
  - SupabaseURL: REST backend base URL (required for rest)
  - SupabaseKey: REST backend API key (required for rest)
  - SupabaseToken: Bearer token (default: the API key)
  - DatabaseURL: DSN for sqlite/postgres (required for those)
  - RedisURL: Preference store; empty keeps preferences in memory
  - BaseURL: Public URL used in share links (default: http://localhost:<port>)
  - TextLimit: Maximum fact length in characters (default: 300)
  - DisplayTZ: Time zone for dates (default: UTC)
  - AtomicVotes: Use single-statement increments when the store supports it

# CLI Flags

	-p            Server port
	-t            Backend type
	-u            REST backend base URL
	-d            Database URL
	-redis        Redis URL
	-base-url     Public base URL
	-api-key      Backend API key
	-token        Backend bearer token
	-text-limit   Fact length cap
	-tz           Display time zone
	-atomic-votes Atomic increments

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	BACKEND_TYPE   → -t
	SUPABASE_URL   → -u
	DATABASE_URL   → -d
	REDIS_URL      → -redis
	BASE_URL       → -base-url
	SUPABASE_KEY   → -api-key
	SUPABASE_TOKEN → -token
	TEXT_LIMIT     → -text-limit
	DISPLAY_TZ     → -tz
	ATOMIC_VOTES   → -atomic-votes

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing, so the same names work there.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - rest needs SUPABASE_URL and SUPABASE_KEY
  - sqlite and postgres need DATABASE_URL
  - DISPLAY_TZ must name a known zone
  - TEXT_LIMIT must be positive
*/
package cliparse
