// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sam-M345/Factify/cliparse"
	"github.com/Sam-M345/Factify/db"
	"github.com/Sam-M345/Factify/models"
)

// TestDBURL is an in-memory SQLite database with foreign keys enforced
const TestDBURL = "file::memory:?_pragma=foreign_keys(1)"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DialectSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a SQL-backed store over a fresh test database
func SetupTestStore(t *testing.T) (*db.Store, *sql.DB) {
	t.Helper()
	conn := SetupTestDB(t)
	return db.NewStore(conn), conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:        3318,
		BackendType: cliparse.BackendSQLite,
		DatabaseURL: TestDBURL,
		BaseURL:     "http://facts.test",
		TextLimit:   cliparse.DefaultTextLimit,
		DisplayTZ:   "UTC",
	}
}

// CreateTestFact inserts a fact with explicit counters and creation time
func CreateTestFact(t *testing.T, conn *sql.DB, text, category string, votesUp int, createdAt time.Time) models.Fact {
	t.Helper()

	f := models.Fact{
		Text:      text,
		Source:    "https://example.com/" + category,
		Category:  category,
		VotesUp:   votesUp,
		CreatedAt: createdAt.UTC(),
	}
	err := conn.QueryRow(`
		INSERT INTO facts (text, source, category, "votesUp", "votesDown", created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, f.Text, f.Source, f.Category, f.VotesUp, f.VotesDown, f.CreatedAt).Scan(&f.ID)
	if err != nil {
		t.Fatalf("Failed to create test fact: %v", err)
	}

	return f
}

// CreateTestComment attaches a comment to a fact
func CreateTestComment(t *testing.T, conn *sql.DB, factID int64, text string, voteType models.VoteType, createdAt time.Time) models.Comment {
	t.Helper()

	c := models.Comment{FactID: factID, Comment: text, VoteType: voteType, CreatedAt: createdAt.UTC()}
	err := conn.QueryRow(`
		INSERT INTO comments (fact_id, comment, vote_type, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.FactID, c.Comment, string(c.VoteType), c.CreatedAt).Scan(&c.ID)
	if err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return c
}

// GetVotes reads both counters straight from the database
func GetVotes(t *testing.T, conn *sql.DB, factID int64) (up, down int) {
	t.Helper()

	err := conn.QueryRow(`SELECT "votesUp", "votesDown" FROM facts WHERE id = $1`, factID).Scan(&up, &down)
	if err != nil {
		t.Fatalf("Failed to read votes: %v", err)
	}
	return up, down
}

// CountComments returns how many comments reference factID
func CountComments(t *testing.T, conn *sql.DB, factID int64) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM comments WHERE fact_id = $1`, factID).Scan(&n); err != nil {
		t.Fatalf("Failed to count comments: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
