// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package submission validates and stores new facts.
//
// A fact needs non-empty text of at most the configured number of
// characters, a category from the fixed set, and a source that starts with
// http:// or https:// ("www." sources are given https://). Validation runs
// before any backend call.
package submission
