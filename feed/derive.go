// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Sam-M345/Factify/models"
)

// Filter keeps facts whose category matches case-insensitively.
// "all" (or empty) returns facts unchanged.
func Filter(facts []models.Fact, category string) []models.Fact {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == models.CategoryAll {
		return facts
	}

	out := make([]models.Fact, 0, len(facts))
	for _, f := range facts {
		if strings.ToLower(f.Category) == category {
			out = append(out, f)
		}
	}
	return out
}

// Sort orders facts in place, newest or most up-voted first.
// Ties keep the backend's order.
func Sort(facts []models.Fact, pref models.SortPreference) {
	switch pref {
	case models.SortUpvoted:
		slices.SortStableFunc(facts, func(a, b models.Fact) int {
			return b.VotesUp - a.VotesUp
		})
	default:
		slices.SortStableFunc(facts, func(a, b models.Fact) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
}

// GroupComments buckets comments by fact, newest first within each bucket
func GroupComments(comments []models.Comment) map[int64][]models.Comment {
	grouped := make(map[int64][]models.Comment)
	for _, c := range comments {
		grouped[c.FactID] = append(grouped[c.FactID], c)
	}
	for id := range grouped {
		SortComments(grouped[id])
	}
	return grouped
}

// SortComments orders comments newest first
func SortComments(comments []models.Comment) {
	slices.SortStableFunc(comments, func(a, b models.Comment) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

// Button is the vote control for one counter. The full render and the
// post-vote patch both go through here so they always agree.
func Button(voteType models.VoteType, count int) models.VoteButton {
	return models.VoteButton{
		Type:  voteType,
		Emoji: voteType.Emoji(),
		Count: count,
		Label: voteType.Emoji() + " " + humanize.Comma(int64(count)),
	}
}

// Buttons returns the vote controls for f in display order
func Buttons(f models.Fact) []models.VoteButton {
	out := make([]models.VoteButton, len(models.VoteTypes))
	for i, vt := range models.VoteTypes {
		out[i] = Button(vt, f.Count(vt))
	}
	return out
}

// ApplyVote returns f with one counter set to count, and the patched button
func ApplyVote(f models.Fact, voteType models.VoteType, count int) (models.Fact, models.VoteButton) {
	f.SetCount(voteType, count)
	return f, Button(voteType, count)
}
