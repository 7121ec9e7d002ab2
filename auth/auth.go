// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingAPIKey = errors.New("backend API key is required")
)

// Credentials is the caller identity presented to the data backend.
// Both values are opaque; they are only ever copied onto requests.
type Credentials struct {
	APIKey      string
	BearerToken string
}

// NewCredentials builds a credential pair. An empty token falls back to
// the API key, which is how anonymous Supabase clients authenticate.
func NewCredentials(apiKey, token string) (Credentials, error) {
	apiKey = strings.TrimSpace(apiKey)
	token = strings.TrimSpace(token)
	if apiKey == "" {
		return Credentials{}, ErrMissingAPIKey
	}
	if token == "" {
		token = apiKey
	}
	return Credentials{APIKey: apiKey, BearerToken: token}, nil
}

// Apply stamps the credential headers onto h
func (c Credentials) Apply(h http.Header) {
	if c.APIKey != "" {
		h.Set("apikey", c.APIKey)
	}
	if c.BearerToken != "" {
		h.Set("Authorization", "Bearer "+c.BearerToken)
	}
}

// String never prints the secrets themselves
func (c Credentials) String() string {
	return "apikey=" + redact(c.APIKey) + " token=" + redact(c.BearerToken)
}

// redact keeps the last four characters so keys can be told apart in logs
func redact(s string) string {
	if s == "" {
		return "<unset>"
	}
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
