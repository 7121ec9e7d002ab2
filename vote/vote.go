// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Sam-M345/Factify/backend"
	"github.com/Sam-M345/Factify/feed"
	"github.com/Sam-M345/Factify/models"
)

// ErrCommentNotSaved marks a failure after the counter was already written
var ErrCommentNotSaved = errors.New("vote recorded but comment not saved")

// Ballot is one submitted vote with its optional comment
type Ballot struct {
	FactID   int64
	VoteType models.VoteType
	Comment  string
}

// Result is what the page needs to patch one row in place
type Result struct {
	FactID int64
	Button models.VoteButton
	// Comments is nil unless a comment was stored
	Comments []models.Comment
}

type Controller struct {
	store  backend.Store
	atomic bool
	now    func() time.Time

	mu    sync.Mutex
	locks map[int64]*factLock
}

type factLock struct {
	mu   sync.Mutex
	refs int
}

// NewController returns a controller over store. With atomic set and a store
// that implements backend.Incrementer, the read and write collapse into one
// increment.
func NewController(store backend.Store, atomic bool) *Controller {
	return &Controller{
		store:  store,
		atomic: atomic,
		now:    time.Now,
		locks:  make(map[int64]*factLock),
	}
}

// Submit records one vote and, if the ballot carries text, one comment.
// Steps run in order and the first failure stops the rest. A counter that
// was already written is not rolled back.
func (c *Controller) Submit(ctx context.Context, b Ballot) (*Result, error) {
	if !b.VoteType.Valid() {
		return nil, backend.ErrInvalidVoteType
	}

	// The write sequence outlives an abandoned request
	ctx = context.WithoutCancel(ctx)

	unlock := c.lock(b.FactID)
	defer unlock()

	count, err := c.increment(ctx, b.FactID, b.VoteType)
	if err != nil {
		slog.Error("vote failed",
			"fact_id", b.FactID,
			"vote_type", b.VoteType,
			"error", err,
		)
		return nil, err
	}

	result := &Result{
		FactID: b.FactID,
		Button: feed.Button(b.VoteType, count),
	}

	slog.Info("vote recorded",
		"fact_id", b.FactID,
		"vote_type", b.VoteType,
		"count", count,
	)

	text := strings.TrimSpace(b.Comment)
	if text == "" {
		return result, nil
	}

	_, err = c.store.InsertComment(ctx, models.Comment{
		FactID:    b.FactID,
		Comment:   text,
		VoteType:  b.VoteType,
		CreatedAt: c.now().UTC(),
	})
	if err != nil {
		slog.Error("comment failed after vote was recorded",
			"fact_id", b.FactID,
			"vote_type", b.VoteType,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrCommentNotSaved, err)
	}

	comments, err := c.store.ListComments(ctx, b.FactID)
	if err != nil {
		slog.Error("failed to reload comments", "fact_id", b.FactID, "error", err)
		return nil, err
	}
	feed.SortComments(comments)
	result.Comments = comments

	return result, nil
}

func (c *Controller) increment(ctx context.Context, id int64, vt models.VoteType) (int, error) {
	if inc, ok := c.store.(backend.Incrementer); ok && c.atomic {
		return inc.IncrementVotes(ctx, id, vt)
	}

	fact, err := c.store.GetFact(ctx, id)
	if err != nil {
		return 0, err
	}

	count := fact.Count(vt) + 1
	if err := c.store.UpdateVotes(ctx, id, vt, count); err != nil {
		return 0, err
	}
	return count, nil
}

// lock serialises votes on one fact within this process
func (c *Controller) lock(id int64) func() {
	c.mu.Lock()
	l, ok := c.locks[id]
	if !ok {
		l = &factLock{}
		c.locks[id] = l
	}
	l.refs++
	c.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		c.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(c.locks, id)
		}
		c.mu.Unlock()
	}
}
