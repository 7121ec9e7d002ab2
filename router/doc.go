// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for Factify.

# Route Registration

NewRouter builds a chi router with every endpoint:

	r, err := router.NewRouter(store, prefStore, cfg)

All routes pass through RealIP, Recoverer and CORS. Everything except the
health check also gets a session cookie, and each handler is wrapped with
middleware.WithLogging.

# Endpoints

Health:

	GET /health

Page (HTML):

	GET  /                  - Feed, ?category= ?sort= ?fact=
	POST /facts             - Submit a new fact
	POST /facts/{id}/votes  - Vote, optional comment

API (JSON):

	GET  /api/facts                - Filtered, sorted feed
	POST /api/facts                - Submit a new fact
	POST /api/facts/{id}/votes     - Vote, optional comment
	GET  /api/facts/{id}/comments  - Comments, newest first
	GET  /api/facts/{id}/share     - Share link
	PUT  /api/preferences/sort     - Store sort preference
*/
package router
