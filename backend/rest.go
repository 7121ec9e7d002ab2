// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Sam-M345/Factify/auth"
	"github.com/Sam-M345/Factify/models"
)

const (
	DefaultFactsTable    = "facts"
	DefaultCommentsTable = "comments"

	// maxErrorBody caps how much of a failed response is kept for logging
	maxErrorBody = 4 << 10
)

type RESTConfig struct {
	BaseURL       string // e.g. https://xyz.supabase.co/rest/v1
	FactsTable    string
	CommentsTable string
	Credentials   auth.Credentials
	HTTPClient    *http.Client
}

// RESTStore talks to a PostgREST endpoint using its filter conventions
// (?id=eq.1, ?fact_id=in.(1,2)).
type RESTStore struct {
	factsURL    string
	commentsURL string
	creds       auth.Credentials
	client      *http.Client
}

func NewRESTStore(cfg RESTConfig) (*RESTStore, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid backend base URL: %w", err)
	}

	facts := cfg.FactsTable
	if facts == "" {
		facts = DefaultFactsTable
	}
	comments := cfg.CommentsTable
	if comments == "" {
		comments = DefaultCommentsTable
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &RESTStore{
		factsURL:    base + "/" + facts,
		commentsURL: base + "/" + comments,
		creds:       cfg.Credentials,
		client:      client,
	}, nil
}

// ListFacts handles GET <facts>?select=*
func (s *RESTStore) ListFacts(ctx context.Context) ([]models.Fact, error) {
	q := url.Values{}
	q.Set("select", "*")

	var facts []models.Fact
	if err := s.get(ctx, "list facts", s.factsURL, q, &facts); err != nil {
		return nil, err
	}
	return facts, nil
}

// GetFact handles GET <facts>?id=eq.<id>
func (s *RESTStore) GetFact(ctx context.Context, id int64) (*models.Fact, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", "eq."+strconv.FormatInt(id, 10))

	var facts []models.Fact
	if err := s.get(ctx, "get fact", s.factsURL, q, &facts); err != nil {
		return nil, err
	}
	if len(facts) == 0 {
		return nil, ErrNotFound
	}
	return &facts[0], nil
}

// UpdateVotes handles PATCH <facts>?id=eq.<id> with a single counter
func (s *RESTStore) UpdateVotes(ctx context.Context, id int64, voteType models.VoteType, count int) error {
	if !voteType.Valid() {
		return ErrInvalidVoteType
	}

	q := url.Values{}
	q.Set("id", "eq."+strconv.FormatInt(id, 10))
	body := map[string]int{string(voteType): count}

	return s.write(ctx, "update votes", http.MethodPatch, s.factsURL, q, body, "return=minimal", nil)
}

// InsertFact handles POST <facts>
func (s *RESTStore) InsertFact(ctx context.Context, fact models.NewFact) (*models.Fact, error) {
	var created []models.Fact
	if err := s.write(ctx, "insert fact", http.MethodPost, s.factsURL, nil, fact, "return=representation", &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		// Backend accepted the row but returned no representation
		return &models.Fact{
			Text:      fact.Text,
			Source:    fact.Source,
			Category:  fact.Category,
			VotesUp:   fact.VotesUp,
			VotesDown: fact.VotesDown,
		}, nil
	}
	return &created[0], nil
}

// ListComments handles GET <comments>?fact_id=in.(a,b,…). No ids, no request.
func (s *RESTStore) ListComments(ctx context.Context, factIDs ...int64) ([]models.Comment, error) {
	if len(factIDs) == 0 {
		return nil, nil
	}

	q := url.Values{}
	q.Set("select", "*")
	if len(factIDs) == 1 {
		q.Set("fact_id", "eq."+strconv.FormatInt(factIDs[0], 10))
	} else {
		ids := make([]string, len(factIDs))
		for i, id := range factIDs {
			ids[i] = strconv.FormatInt(id, 10)
		}
		q.Set("fact_id", "in.("+strings.Join(ids, ",")+")")
	}

	var comments []models.Comment
	if err := s.get(ctx, "list comments", s.commentsURL, q, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// InsertComment handles POST <comments>
func (s *RESTStore) InsertComment(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	body := struct {
		FactID    int64           `json:"fact_id"`
		Comment   string          `json:"comment"`
		VoteType  models.VoteType `json:"vote_type"`
		CreatedAt string          `json:"created_at"`
	}{
		FactID:    comment.FactID,
		Comment:   comment.Comment,
		VoteType:  comment.VoteType,
		CreatedAt: comment.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}

	var created []models.Comment
	if err := s.write(ctx, "insert comment", http.MethodPost, s.commentsURL, nil, body, "return=representation", &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return &comment, nil
	}
	return &created[0], nil
}

func (s *RESTStore) get(ctx context.Context, op, endpoint string, q url.Values, out any) error {
	req, err := s.newRequest(ctx, http.MethodGet, endpoint, q, nil)
	if err != nil {
		return fetchError(op, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fetchError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Kind: KindFetch, Op: op, Status: resp.StatusCode, Body: readBody(resp.Body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fetchError(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (s *RESTStore) write(ctx context.Context, op, method, endpoint string, q url.Values, body any, prefer string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return writeError(op, fmt.Errorf("encode body: %w", err))
	}

	req, err := s.newRequest(ctx, method, endpoint, q, bytes.NewReader(payload))
	if err != nil {
		return writeError(op, err)
	}
	req.Header.Set("Prefer", prefer)

	resp, err := s.client.Do(req)
	if err != nil {
		return writeError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Kind: KindWrite, Op: op, Status: resp.StatusCode, Body: readBody(resp.Body)}
	}
	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return writeError(op, fmt.Errorf("read response: %w", err))
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return writeError(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (s *RESTStore) newRequest(ctx context.Context, method, endpoint string, q url.Values, body io.Reader) (*http.Request, error) {
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	s.creds.Apply(req.Header)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func readBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return strings.TrimSpace(string(b))
}
