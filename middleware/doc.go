// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	r.Get("/", middleware.WithLogging(h.Page))

Logs request start (method, path, remote) and completion (status,
duration_ms).

# Sessions

Session issues a "factify_session" cookie holding a random UUID and puts
the id on the request context:

	session := middleware.SessionID(r.Context())

The id only keys stored preferences. It is not an identity and carries no
authority.

# CORS Middleware

Enable cross-origin requests for API clients:

	r.Use(middleware.CORS)

Allows methods GET, POST, PUT, OPTIONS with the Content-Type header.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
