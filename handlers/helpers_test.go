// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Sam-M345/Factify/backend"
	"github.com/Sam-M345/Factify/middleware"
	"github.com/Sam-M345/Factify/prefs"
	"github.com/Sam-M345/Factify/render"
	"github.com/Sam-M345/Factify/submission"
	"github.com/Sam-M345/Factify/testutil"
	"github.com/Sam-M345/Factify/vote"
)

var t0 = time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC)

type testServer struct {
	router http.Handler
	conn   *sql.DB
	store  *testutil.FaultyStore
}

// setupServer wires every handler over a fresh database behind a chi router
func setupServer(t *testing.T) *testServer {
	t.Helper()

	inner, conn := testutil.SetupTestStore(t)
	store := &testutil.FaultyStore{Inner: inner}
	cfg := testutil.GetTestConfig()

	renderer, err := render.New(cfg.Location(), cfg.BaseURL)
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}

	var s backend.Store = store
	feedHandler := NewFeedHandler(s, prefs.NewMemoryStore(), renderer, cfg)
	factHandler := NewFactHandler(submission.NewService(s, cfg.TextLimit), feedHandler)
	voteHandler := NewVoteHandler(vote.NewController(s, cfg.AtomicVotes))

	r := chi.NewRouter()
	r.Use(middleware.Session)
	r.Get("/", feedHandler.Page)
	r.Post("/facts", factHandler.CreateFactForm)
	r.Post("/facts/{id}/votes", voteHandler.VoteForm)
	r.Get("/api/facts", feedHandler.ListFacts)
	r.Post("/api/facts", factHandler.CreateFact)
	r.Post("/api/facts/{id}/votes", voteHandler.Vote)
	r.Get("/api/facts/{id}/comments", feedHandler.Comments)
	r.Get("/api/facts/{id}/share", feedHandler.Share)
	r.Put("/api/preferences/sort", feedHandler.SetSort)

	return &testServer{router: r, conn: conn, store: store}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// sessionCookie returns the session cookie issued on w
func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatal("Expected a session cookie")
	return nil
}
