package models

import (
	"strings"
	"time"
)

// Sort preference constants
const (
	SortRecent  SortPreference = "recent"
	SortUpvoted SortPreference = "upvoted"
)

// CategoryAll selects every category
const CategoryAll = "all"

// Vote counter columns. The value doubles as the JSON field name on Fact.
const (
	VoteUp   VoteType = "votesUp"
	VoteDown VoteType = "votesDown"
)

type SortPreference string

// ParseSort returns the preference named by s, or false if s names none
func ParseSort(s string) (SortPreference, bool) {
	switch SortPreference(strings.ToLower(strings.TrimSpace(s))) {
	case SortRecent:
		return SortRecent, true
	case SortUpvoted:
		return SortUpvoted, true
	}
	return "", false
}

type VoteType string

func (v VoteType) Valid() bool {
	return v == VoteUp || v == VoteDown
}

func (v VoteType) Emoji() string {
	if v == VoteDown {
		return "👎"
	}
	return "👍"
}

// Verb is the label used on the comment submit control
func (v VoteType) Verb() string {
	if v == VoteDown {
		return "Vote down"
	}
	return "Vote up"
}

// VoteTypes lists the counters in display order
var VoteTypes = []VoteType{VoteUp, VoteDown}

// Domain types

type Fact struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Source    string    `json:"source"`
	Category  string    `json:"category"`
	VotesUp   int       `json:"votesUp"`
	VotesDown int       `json:"votesDown"`
	CreatedAt time.Time `json:"created_at"`
}

// Count returns the counter named by v
func (f *Fact) Count(v VoteType) int {
	if v == VoteDown {
		return f.VotesDown
	}
	return f.VotesUp
}

// SetCount overwrites the counter named by v
func (f *Fact) SetCount(v VoteType, n int) {
	if v == VoteDown {
		f.VotesDown = n
		return
	}
	f.VotesUp = n
}

// NewFact is the insert body for a fact; id and created_at are backend-assigned
type NewFact struct {
	Text      string `json:"text"`
	Source    string `json:"source"`
	Category  string `json:"category"`
	VotesUp   int    `json:"votesUp"`
	VotesDown int    `json:"votesDown"`
}

type Comment struct {
	ID        int64     `json:"id,omitempty"`
	FactID    int64     `json:"fact_id"`
	Comment   string    `json:"comment"`
	VoteType  VoteType  `json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
}

// Request types

type CreateFactRequest struct {
	Text     string `json:"text"`
	Source   string `json:"source"`
	Category string `json:"category"`
}

type VoteRequest struct {
	VoteType VoteType `json:"vote_type"`
	Comment  string   `json:"comment"`
}

type SortRequest struct {
	Sort string `json:"sort"`
}

// Response types

type VoteButton struct {
	Type  VoteType `json:"vote_type"`
	Emoji string   `json:"emoji"`
	Count int      `json:"count"`
	Label string   `json:"label"`
}

type VoteResponse struct {
	FactID   int64      `json:"fact_id"`
	Button   VoteButton `json:"button"`
	Comments []Comment  `json:"comments,omitempty"`
}

type CommentsResponse struct {
	FactID   int64     `json:"fact_id"`
	Comments []Comment `json:"comments"`
}

type ShareResponse struct {
	FactID int64  `json:"fact_id"`
	URL    string `json:"url"`
	Text   string `json:"text"`
}

type SortResponse struct {
	Sort SortPreference `json:"sort"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
