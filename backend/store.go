// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sam-M345/Factify/models"
)

var (
	ErrNotFound        = errors.New("fact not found")
	ErrInvalidVoteType = errors.New("invalid vote type")
)

// Store is the data backend: facts and comments addressed by primary key
type Store interface {
	ListFacts(ctx context.Context) ([]models.Fact, error)
	GetFact(ctx context.Context, id int64) (*models.Fact, error)
	UpdateVotes(ctx context.Context, id int64, voteType models.VoteType, count int) error
	InsertFact(ctx context.Context, fact models.NewFact) (*models.Fact, error)
	ListComments(ctx context.Context, factIDs ...int64) ([]models.Comment, error)
	InsertComment(ctx context.Context, comment models.Comment) (*models.Comment, error)
}

// Incrementer is implemented by stores that can bump a counter atomically
// and report the new value.
type Incrementer interface {
	IncrementVotes(ctx context.Context, id int64, voteType models.VoteType) (int, error)
}

type Kind int

const (
	KindFetch Kind = iota + 1
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindFetch:
		return "fetch"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Error is a failed backend call. Status is zero for transport errors.
type Error struct {
	Kind   Kind
	Op     string
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s failed: status %d: %s", e.Kind, e.Op, e.Status, e.Body)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fetchError(op string, err error) error {
	return &Error{Kind: KindFetch, Op: op, Err: err}
}

func writeError(op string, err error) error {
	return &Error{Kind: KindWrite, Op: op, Err: err}
}

// FetchError wraps err as a failed read
func FetchError(op string, err error) error {
	return fetchError(op, err)
}

// WriteError wraps err as a failed write
func WriteError(op string, err error) error {
	return writeError(op, err)
}

// IsFetch reports whether err is a failed backend read
func IsFetch(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == KindFetch
}

// IsWrite reports whether err is a rejected backend write
func IsWrite(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == KindWrite
}
