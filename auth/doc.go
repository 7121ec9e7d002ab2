// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth carries the credential pair used to talk to the data backend.

# Credentials

The backend expects an API key and a bearer token on every request:

	creds, err := auth.NewCredentials(apiKey, token)
	creds.Apply(req.Header)

This sets the apikey header and "Authorization: Bearer <token>". When no
token is configured the API key is used for both, which matches an
anonymous Supabase client.

Nothing here generates or verifies secrets. They are injected at startup
from configuration and treated as opaque.

# Logging

Credentials implements fmt.Stringer with redaction, so a Credentials value
can be logged without leaking the key:

	slog.Info("backend configured", "credentials", creds)
	// apikey=****abcd token=****abcd
*/
package auth
