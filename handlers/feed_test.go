// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Sam-M345/Factify/backend"
	"github.com/Sam-M345/Factify/feed"
	"github.com/Sam-M345/Factify/models"
	"github.com/Sam-M345/Factify/testutil"
)

func TestPage(t *testing.T) {
	s := setupServer(t)
	testutil.CreateTestFact(t, s.conn, "Sharks predate trees", "science", 2, t0)
	testutil.CreateTestFact(t, s.conn, "The first bug was a moth", "technology", 9, t0.Add(time.Hour))

	testCases := []struct {
		name     string
		path     string
		contains []string
		excludes []string
	}{
		{
			name:     "all categories",
			path:     "/",
			contains: []string{"Sharks predate trees", "The first bug was a moth", "btn-category"},
		},
		{
			name:     "category filter",
			path:     "/?category=Science",
			contains: []string{"Sharks predate trees"},
			excludes: []string{"The first bug was a moth"},
		},
		{
			name:     "empty category",
			path:     "/?category=history",
			contains: []string{"empty-row"},
		},
		{
			name:     "known flash",
			path:     "/?error=vote",
			contains: []string{`role="alert"`, "error updating the vote"},
		},
		{
			name:     "unknown flash is ignored",
			path:     "/?error=%3Cb%3Ephish%3C%2Fb%3E",
			excludes: []string{`role="alert"`, "phish"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(testutil.MakeRequest("GET", tc.path, nil, nil))

			testutil.AssertStatus(t, w, http.StatusOK)
			body := w.Body.String()
			for _, want := range tc.contains {
				if !strings.Contains(body, want) {
					t.Errorf("Expected page to contain %q", want)
				}
			}
			for _, unwanted := range tc.excludes {
				if strings.Contains(body, unwanted) {
					t.Errorf("Expected page not to contain %q", unwanted)
				}
			}
		})
	}
}

func TestPage_SortPreferencePersists(t *testing.T) {
	s := setupServer(t)
	testutil.CreateTestFact(t, s.conn, "Older but popular", "news", 10, t0)
	testutil.CreateTestFact(t, s.conn, "Newer but quiet", "news", 1, t0.Add(time.Hour))

	order := func(body string) bool {
		return strings.Index(body, "Older but popular") < strings.Index(body, "Newer but quiet")
	}

	// Default is most recent first
	w := s.do(testutil.MakeRequest("GET", "/", nil, nil))
	if order(w.Body.String()) {
		t.Error("Expected newest fact first by default")
	}
	cookie := sessionCookie(t, w)

	req := testutil.MakeRequest("GET", "/?sort=upvoted", nil, nil)
	req.AddCookie(cookie)
	w = s.do(req)
	if !order(w.Body.String()) {
		t.Error("Expected most up-voted fact first")
	}

	// Later visits without ?sort keep the stored choice
	req = testutil.MakeRequest("GET", "/", nil, nil)
	req.AddCookie(cookie)
	w = s.do(req)
	if !order(w.Body.String()) {
		t.Error("Expected stored sort preference to apply")
	}

	// A different browser is unaffected
	w = s.do(testutil.MakeRequest("GET", "/", nil, nil))
	if order(w.Body.String()) {
		t.Error("Sort preference leaked to another session")
	}
}

func TestPage_DirectLink(t *testing.T) {
	s := setupServer(t)
	testutil.CreateTestFact(t, s.conn, "Unrelated", "science", 0, t0)
	target := testutil.CreateTestFact(t, s.conn, "Linked fact", "finance", 0, t0)

	w := s.do(testutil.MakeRequest("GET", fmt.Sprintf("/?category=science&fact=%d", target.ID), nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if !strings.Contains(body, "Linked fact") || strings.Contains(body, "Unrelated") {
		t.Error("Expected only the linked fact")
	}
	if strings.Contains(body, "btn-category") {
		t.Error("Expected category navigation to be hidden")
	}
	if !strings.Contains(body, "Back to all facts") {
		t.Error("Expected back control")
	}
}

func TestPage_DirectLinkMissing(t *testing.T) {
	s := setupServer(t)

	w := s.do(testutil.MakeRequest("GET", "/?fact=999", nil, nil))

	testutil.AssertStatus(t, w, http.StatusNotFound)
	if !strings.Contains(w.Body.String(), msgNotFound) {
		t.Error("Expected not-found row")
	}
}

func TestPage_FetchFailure(t *testing.T) {
	s := setupServer(t)
	s.store.ListFactsErr = backend.FetchError("list facts", errors.New("connection refused"))

	w := s.do(testutil.MakeRequest("GET", "/", nil, nil))

	testutil.AssertStatus(t, w, http.StatusBadGateway)
	body := w.Body.String()
	if !strings.Contains(body, `<li class="error-row">`+msgLoadFailed+`</li>`) {
		t.Error("Expected a single error row")
	}
	if strings.Contains(body, "connection refused") {
		t.Error("Backend error details must not reach the page")
	}
}

func TestListFacts(t *testing.T) {
	s := setupServer(t)
	a := testutil.CreateTestFact(t, s.conn, "A", "health", 1, t0)
	b := testutil.CreateTestFact(t, s.conn, "B", "health", 4, t0.Add(-time.Hour))
	testutil.CreateTestFact(t, s.conn, "C", "news", 9, t0)
	testutil.CreateTestComment(t, s.conn, a.ID, "hm", models.VoteDown, t0)

	w := s.do(testutil.MakeRequest("GET", "/api/facts?category=health&sort=upvoted", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var view feed.View
	testutil.AssertJSON(t, w, &view)

	if view.Query.Category != "health" || view.Query.Sort != models.SortUpvoted {
		t.Errorf("Unexpected query echo: %+v", view.Query)
	}
	if len(view.Facts) != 2 || view.Facts[0].ID != b.ID || view.Facts[1].ID != a.ID {
		t.Fatalf("Unexpected facts: %+v", view.Facts)
	}
	if view.Facts[1].Color != "#14b8a6" || len(view.Facts[1].Buttons) != 2 {
		t.Errorf("Expected decorated row, got %+v", view.Facts[1])
	}
	if len(view.Facts[1].Comments) != 1 || len(view.Facts[0].Comments) != 0 {
		t.Errorf("Expected comments only on fact A")
	}
}

func TestListFacts_FetchFailure(t *testing.T) {
	s := setupServer(t)
	s.store.ListFactsErr = backend.FetchError("list facts", errors.New("timeout"))

	w := s.do(testutil.MakeRequest("GET", "/api/facts", nil, nil))

	testutil.AssertStatus(t, w, http.StatusBadGateway)
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != msgLoadFailed {
		t.Errorf("Unexpected message: %q", resp.Message)
	}
}

func TestComments(t *testing.T) {
	s := setupServer(t)
	f := testutil.CreateTestFact(t, s.conn, "Fact", "society", 0, t0)
	testutil.CreateTestComment(t, s.conn, f.ID, "first", models.VoteUp, t0)
	testutil.CreateTestComment(t, s.conn, f.ID, "second", models.VoteDown, t0.Add(time.Minute))
	empty := testutil.CreateTestFact(t, s.conn, "Quiet", "society", 0, t0)

	testCases := []struct {
		name   string
		path   string
		status int
		want   []string
	}{
		{"newest first", fmt.Sprintf("/api/facts/%d/comments", f.ID), http.StatusOK, []string{"second", "first"}},
		{"no comments", fmt.Sprintf("/api/facts/%d/comments", empty.ID), http.StatusOK, []string{}},
		{"missing fact", "/api/facts/999/comments", http.StatusNotFound, nil},
		{"bad id", "/api/facts/abc/comments", http.StatusBadRequest, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(testutil.MakeRequest("GET", tc.path, nil, nil))
			testutil.AssertStatus(t, w, tc.status)
			if tc.status != http.StatusOK {
				return
			}

			var resp models.CommentsResponse
			testutil.AssertJSON(t, w, &resp)
			if len(resp.Comments) != len(tc.want) {
				t.Fatalf("Expected %d comments, got %d", len(tc.want), len(resp.Comments))
			}
			for i, want := range tc.want {
				if resp.Comments[i].Comment != want {
					t.Errorf("Comment %d: expected %q, got %q", i, want, resp.Comments[i].Comment)
				}
			}
		})
	}
}

func TestShare(t *testing.T) {
	s := setupServer(t)
	f := testutil.CreateTestFact(t, s.conn, "Koalas have fingerprints", "science", 0, t0)

	w := s.do(testutil.MakeRequest("GET", fmt.Sprintf("/api/facts/%d/share", f.ID), nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ShareResponse
	testutil.AssertJSON(t, w, &resp)

	wantURL := fmt.Sprintf("http://facts.test/#fact-%d", f.ID)
	if resp.URL != wantURL {
		t.Errorf("Expected URL %q, got %q", wantURL, resp.URL)
	}
	if resp.Text != "Koalas have fingerprints" {
		t.Errorf("Unexpected share text %q", resp.Text)
	}

	// The shared link opens the single-fact view
	id, ok := feed.ParseFactRef(resp.URL[strings.Index(resp.URL, "#"):])
	if !ok || id != f.ID {
		t.Errorf("Share URL fragment does not resolve to the fact")
	}

	w = s.do(testutil.MakeRequest("GET", "/api/facts/999/share", nil, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestSetSort(t *testing.T) {
	s := setupServer(t)
	testutil.CreateTestFact(t, s.conn, "Popular", "news", 10, t0)
	testutil.CreateTestFact(t, s.conn, "Recent", "news", 0, t0.Add(time.Hour))

	w := s.do(testutil.MakeRequest("PUT", "/api/preferences/sort", models.SortRequest{Sort: "upvoted"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	cookie := sessionCookie(t, w)

	var resp models.SortResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Sort != models.SortUpvoted {
		t.Errorf("Expected upvoted, got %s", resp.Sort)
	}

	req := testutil.MakeRequest("GET", "/api/facts", nil, nil)
	req.AddCookie(cookie)
	w = s.do(req)

	var view feed.View
	testutil.AssertJSON(t, w, &view)
	if len(view.Facts) != 2 || view.Facts[0].Text != "Popular" {
		t.Errorf("Expected stored sort to apply, got %+v", view.Facts)
	}

	t.Run("invalid value", func(t *testing.T) {
		w := s.do(testutil.MakeRequest("PUT", "/api/preferences/sort", models.SortRequest{Sort: "random"}, nil))
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}
