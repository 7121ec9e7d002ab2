// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package prefs

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Sam-M345/Factify/models"
)

// SortKey is the preference key for the feed ordering
const SortKey = "sortPreference"

// ErrNoSession is returned when a preference is written without a session
var ErrNoSession = errors.New("no session")

// Store persists small per-session values. Get returns "" for a missing key.
type Store interface {
	Get(ctx context.Context, session, key string) (string, error)
	Set(ctx context.Context, session, key, value string) error
}

// MemoryStore keeps preferences for the lifetime of the process
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, session, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[session][key], nil
}

func (m *MemoryStore) Set(_ context.Context, session, key, value string) error {
	if session == "" {
		return ErrNoSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.values[session] == nil {
		m.values[session] = make(map[string]string)
	}
	m.values[session][key] = value
	return nil
}

// SortFor returns the session's persisted sort, defaulting to recent.
// An unreadable or unknown value also yields recent.
func SortFor(ctx context.Context, store Store, session string) models.SortPreference {
	if session == "" {
		return models.SortRecent
	}

	v, err := store.Get(ctx, session, SortKey)
	if err != nil {
		slog.Warn("failed to read sort preference", "error", err)
		return models.SortRecent
	}

	pref, ok := models.ParseSort(v)
	if !ok {
		return models.SortRecent
	}
	return pref
}

// SetSort persists pref for the session
func SetSort(ctx context.Context, store Store, session string, pref models.SortPreference) error {
	return store.Set(ctx, session, SortKey, string(pref))
}
