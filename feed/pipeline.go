// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Sam-M345/Factify/backend"
	"github.com/Sam-M345/Factify/models"
)

// Query selects what the feed shows. FactID > 0 is direct-link mode.
type Query struct {
	Category string                `json:"category"`
	Sort     models.SortPreference `json:"sort"`
	FactID   int64                 `json:"fact_id,omitempty"`
}

// DirectLink reports whether the query targets a single fact
func (q Query) DirectLink() bool {
	return q.FactID > 0
}

// FactView is one rendered row
type FactView struct {
	models.Fact
	Color    string              `json:"color"`
	Buttons  []models.VoteButton `json:"buttons"`
	Comments []models.Comment    `json:"comments,omitempty"`
}

// HasComments controls whether the comments panel is shown at all
func (v FactView) HasComments() bool {
	return len(v.Comments) > 0
}

type View struct {
	Query Query      `json:"query"`
	Facts []FactView `json:"facts"`
}

type Pipeline struct {
	store backend.Store
}

func NewPipeline(store backend.Store) *Pipeline {
	return &Pipeline{store: store}
}

// Load fetches, filters, sorts, and decorates the facts for q, then attaches
// each visible fact's comments from one batched request. Any failed fetch
// fails the whole load so nothing partial is rendered.
func (p *Pipeline) Load(ctx context.Context, q Query) (*View, error) {
	q = normalize(q)

	var facts []models.Fact
	if q.DirectLink() {
		fact, err := p.store.GetFact(ctx, q.FactID)
		if err != nil {
			slog.Error("failed to load fact", "fact_id", q.FactID, "error", err)
			return nil, err
		}
		facts = []models.Fact{*fact}
	} else {
		all, err := p.store.ListFacts(ctx)
		if err != nil {
			slog.Error("failed to load facts", "category", q.Category, "error", err)
			return nil, err
		}
		facts = Filter(all, q.Category)
		Sort(facts, q.Sort)
	}

	view := &View{Query: q, Facts: make([]FactView, len(facts))}
	ids := make([]int64, len(facts))
	for i, f := range facts {
		view.Facts[i] = Decorate(f)
		ids[i] = f.ID
	}

	if len(ids) > 0 {
		comments, err := p.store.ListComments(ctx, ids...)
		if err != nil {
			slog.Error("failed to load comments", "facts", len(ids), "error", err)
			return nil, err
		}
		grouped := GroupComments(comments)
		for i := range view.Facts {
			view.Facts[i].Comments = grouped[view.Facts[i].ID]
		}
	}

	slog.Debug("feed loaded",
		"category", q.Category,
		"sort", q.Sort,
		"fact_id", q.FactID,
		"facts", len(view.Facts),
	)

	return view, nil
}

// Decorate builds the view row for f, without comments
func Decorate(f models.Fact) FactView {
	return FactView{
		Fact:    f,
		Color:   models.CategoryColor(f.Category),
		Buttons: Buttons(f),
	}
}

func normalize(q Query) Query {
	q.Category = strings.ToLower(strings.TrimSpace(q.Category))
	if q.Category == "" {
		q.Category = models.CategoryAll
	}
	if q.Sort == "" {
		q.Sort = models.SortRecent
	}
	return q
}

// ParseFactRef extracts a fact id from "#fact-42", "fact-42", or "42"
func ParseFactRef(ref string) (int64, bool) {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimPrefix(ref, "#")
	ref = strings.TrimPrefix(ref, "fact-")
	if ref == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Anchor is the fragment that selects direct-link mode for id
func Anchor(id int64) string {
	return "fact-" + strconv.FormatInt(id, 10)
}
