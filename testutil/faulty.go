// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"sync"

	"github.com/Sam-M345/Factify/backend"
	"github.com/Sam-M345/Factify/models"
)

// FaultyStore wraps a store, records every call, and fails the operations
// whose error field is set.
type FaultyStore struct {
	Inner backend.Store

	ListFactsErr     error
	GetFactErr       error
	UpdateVotesErr   error
	InsertFactErr    error
	ListCommentsErr  error
	InsertCommentErr error

	mu    sync.Mutex
	calls []string
}

func (s *FaultyStore) record(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, op)
}

// Calls returns the operations invoked so far, in order
func (s *FaultyStore) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *FaultyStore) ListFacts(ctx context.Context) ([]models.Fact, error) {
	s.record("ListFacts")
	if s.ListFactsErr != nil {
		return nil, s.ListFactsErr
	}
	return s.Inner.ListFacts(ctx)
}

func (s *FaultyStore) GetFact(ctx context.Context, id int64) (*models.Fact, error) {
	s.record("GetFact")
	if s.GetFactErr != nil {
		return nil, s.GetFactErr
	}
	return s.Inner.GetFact(ctx, id)
}

func (s *FaultyStore) UpdateVotes(ctx context.Context, id int64, voteType models.VoteType, count int) error {
	s.record("UpdateVotes")
	if s.UpdateVotesErr != nil {
		return s.UpdateVotesErr
	}
	return s.Inner.UpdateVotes(ctx, id, voteType, count)
}

func (s *FaultyStore) InsertFact(ctx context.Context, fact models.NewFact) (*models.Fact, error) {
	s.record("InsertFact")
	if s.InsertFactErr != nil {
		return nil, s.InsertFactErr
	}
	return s.Inner.InsertFact(ctx, fact)
}

func (s *FaultyStore) ListComments(ctx context.Context, factIDs ...int64) ([]models.Comment, error) {
	s.record("ListComments")
	if s.ListCommentsErr != nil {
		return nil, s.ListCommentsErr
	}
	return s.Inner.ListComments(ctx, factIDs...)
}

func (s *FaultyStore) InsertComment(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	s.record("InsertComment")
	if s.InsertCommentErr != nil {
		return nil, s.InsertCommentErr
	}
	return s.Inner.InsertComment(ctx, comment)
}
