// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Sam-M345/Factify/backend"
	"github.com/Sam-M345/Factify/models"
)

var (
	_ backend.Store       = (*Store)(nil)
	_ backend.Incrementer = (*Store)(nil)
)

const factColumns = `id, text, source, category, "votesUp", "votesDown", created_at`

// Store serves the backend contract from a local SQL database
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) ListFacts(ctx context.Context) ([]models.Fact, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+factColumns+` FROM facts ORDER BY id`)
	if err != nil {
		return nil, backend.FetchError("list facts", err)
	}
	defer rows.Close()

	facts := []models.Fact{}
	for rows.Next() {
		var f models.Fact
		if err := rows.Scan(&f.ID, &f.Text, &f.Source, &f.Category, &f.VotesUp, &f.VotesDown, &f.CreatedAt); err != nil {
			return nil, backend.FetchError("list facts", err)
		}
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, backend.FetchError("list facts", err)
	}

	return facts, nil
}

func (s *Store) GetFact(ctx context.Context, id int64) (*models.Fact, error) {
	var f models.Fact
	err := s.db.QueryRowContext(ctx, `
		SELECT `+factColumns+` FROM facts WHERE id = $1
	`, id).Scan(&f.ID, &f.Text, &f.Source, &f.Category, &f.VotesUp, &f.VotesDown, &f.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, backend.ErrNotFound
	}
	if err != nil {
		return nil, backend.FetchError("get fact", err)
	}

	return &f, nil
}

func (s *Store) UpdateVotes(ctx context.Context, id int64, voteType models.VoteType, count int) error {
	if !voteType.Valid() {
		return backend.ErrInvalidVoteType
	}

	// Column name is whitelisted above, never user text
	query := fmt.Sprintf(`UPDATE facts SET %q = $1 WHERE id = $2`, string(voteType))
	result, err := s.db.ExecContext(ctx, query, count, id)
	if err != nil {
		return backend.WriteError("update votes", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return backend.WriteError("update votes", err)
	}
	if n == 0 {
		return backend.ErrNotFound
	}

	return nil
}

// IncrementVotes bumps one counter in a single statement and returns the new value
func (s *Store) IncrementVotes(ctx context.Context, id int64, voteType models.VoteType) (int, error) {
	if !voteType.Valid() {
		return 0, backend.ErrInvalidVoteType
	}

	query := fmt.Sprintf(`UPDATE facts SET %[1]q = %[1]q + 1 WHERE id = $1 RETURNING %[1]q`, string(voteType))
	var count int
	err := s.db.QueryRowContext(ctx, query, id).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, backend.ErrNotFound
	}
	if err != nil {
		return 0, backend.WriteError("increment votes", err)
	}

	return count, nil
}

func (s *Store) InsertFact(ctx context.Context, nf models.NewFact) (*models.Fact, error) {
	f := models.Fact{
		Text:      nf.Text,
		Source:    nf.Source,
		Category:  nf.Category,
		VotesUp:   nf.VotesUp,
		VotesDown: nf.VotesDown,
		CreatedAt: s.now().UTC(),
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO facts (text, source, category, "votesUp", "votesDown", created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, f.Text, f.Source, f.Category, f.VotesUp, f.VotesDown, f.CreatedAt).Scan(&f.ID)
	if err != nil {
		return nil, backend.WriteError("insert fact", err)
	}

	return &f, nil
}

func (s *Store) ListComments(ctx context.Context, factIDs ...int64) ([]models.Comment, error) {
	if len(factIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(factIDs))
	args := make([]any, len(factIDs))
	for i, id := range factIDs {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, fact_id, comment, vote_type, created_at
		FROM comments
		WHERE fact_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY id
	`, args...)
	if err != nil {
		return nil, backend.FetchError("list comments", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		var voteType string
		if err := rows.Scan(&c.ID, &c.FactID, &c.Comment, &voteType, &c.CreatedAt); err != nil {
			return nil, backend.FetchError("list comments", err)
		}
		c.VoteType = models.VoteType(voteType)
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, backend.FetchError("list comments", err)
	}

	return comments, nil
}

func (s *Store) InsertComment(ctx context.Context, c models.Comment) (*models.Comment, error) {
	if !c.VoteType.Valid() {
		return nil, backend.ErrInvalidVoteType
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	c.CreatedAt = c.CreatedAt.UTC()

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (fact_id, comment, vote_type, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.FactID, c.Comment, string(c.VoteType), c.CreatedAt).Scan(&c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, backend.ErrNotFound
		}
		return nil, backend.WriteError("insert comment", err)
	}

	return &c, nil
}

// isForeignKeyViolation matches both the sqlite and the pq message
func isForeignKeyViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "violates foreign key constraint")
}
