// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package prefs stores per-session preferences.

The only preference today is the feed ordering, kept under SortKey
("sortPreference") with the values "recent" and "upvoted". A session
without a stored value sees recent.

# Stores

  - MemoryStore: a mutex-guarded map, lost on restart
  - RedisStore: keys "prefs:<session>:<key>" with a 30 day TTL

Sessions come from the session cookie set by middleware.Session.

Redis tests run only when REDIS_URL is set:

	REDIS_URL=redis://localhost:6379 go test ./prefs
*/
package prefs
