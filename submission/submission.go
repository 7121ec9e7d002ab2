// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Sam-M345/Factify/backend"
	"github.com/Sam-M345/Factify/models"
)

// DefaultTextLimit is the fact length cap when none is configured
const DefaultTextLimit = 300

// ValidationError names the first field that failed validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks a new fact and returns the normalised insert body.
// The source gains an https:// scheme when it starts with "www.".
func Validate(req models.CreateFactRequest, limit int) (models.NewFact, error) {
	if limit <= 0 {
		limit = DefaultTextLimit
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return models.NewFact{}, &ValidationError{Field: "text", Message: "is required"}
	}
	if n := utf8.RuneCountInString(text); n > limit {
		return models.NewFact{}, &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("must be at most %d characters (got %d)", limit, n),
		}
	}

	category, ok := models.LookupCategory(req.Category)
	if !ok {
		return models.NewFact{}, &ValidationError{Field: "category", Message: "must be one of the listed categories"}
	}

	source := NormalizeSource(req.Source)
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return models.NewFact{}, &ValidationError{Field: "source", Message: "must start with http:// or https://"}
	}

	return models.NewFact{
		Text:     text,
		Source:   source,
		Category: category.Name,
	}, nil
}

// NormalizeSource trims s and rewrites a leading "www." to "https://www."
func NormalizeSource(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "www.") {
		return "https://" + s
	}
	return s
}

type Service struct {
	store backend.Store
	limit int
}

func NewService(store backend.Store, limit int) *Service {
	if limit <= 0 {
		limit = DefaultTextLimit
	}
	return &Service{store: store, limit: limit}
}

// Limit is the configured maximum fact length in characters
func (s *Service) Limit() int {
	return s.limit
}

// Create validates req and inserts it with both counters at zero.
// Nothing reaches the backend when validation fails.
func (s *Service) Create(ctx context.Context, req models.CreateFactRequest) (*models.Fact, error) {
	nf, err := Validate(req, s.limit)
	if err != nil {
		slog.Info("fact rejected", "error", err)
		return nil, err
	}

	fact, err := s.store.InsertFact(context.WithoutCancel(ctx), nf)
	if err != nil {
		slog.Error("failed to insert fact", "category", nf.Category, "error", err)
		return nil, err
	}

	slog.Info("fact created", "fact_id", fact.ID, "category", fact.Category)
	return fact, nil
}
