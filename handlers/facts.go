// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/Sam-M345/Factify/feed"
	"github.com/Sam-M345/Factify/middleware"
	"github.com/Sam-M345/Factify/models"
	"github.com/Sam-M345/Factify/prefs"
	"github.com/Sam-M345/Factify/render"
	"github.com/Sam-M345/Factify/submission"
)

type FactHandler struct {
	submissions *submission.Service
	feed        *FeedHandler
}

// NewFactHandler uses feedHandler to redraw the page when a form post is rejected
func NewFactHandler(submissions *submission.Service, feedHandler *FeedHandler) *FactHandler {
	return &FactHandler{submissions: submissions, feed: feedHandler}
}

// CreateFact handles POST /api/facts
func (h *FactHandler) CreateFact(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFactRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	fact, err := h.submissions.Create(r.Context(), req)
	if err != nil {
		code, msg := statusFor(err, msgCreateFailed)
		middleware.ErrorResponse(w, code, msg)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, fact)
}

// CreateFactForm handles POST /facts from the page. On success the form
// closes and the unfiltered feed reloads. On failure the page is redrawn
// with the form open and the entered values kept.
func (h *FactHandler) CreateFactForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, middleware.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

	req := models.CreateFactRequest{
		Text:     r.PostForm.Get("text"),
		Source:   r.PostForm.Get("source"),
		Category: r.PostForm.Get("category"),
	}

	if _, err := h.submissions.Create(r.Context(), req); err != nil {
		status, msg := statusFor(err, msgCreateFailed)

		q := feed.Query{
			Category: models.CategoryAll,
			Sort:     prefs.SortFor(r.Context(), h.feed.prefs, middleware.SessionID(r.Context())),
		}
		h.feed.load(r.Context(), w, q, status, render.Page{
			Sort:      q.Sort,
			TextLimit: h.submissions.Limit(),
			Alert:     msg,
			FormOpen:  true,
			Form:      req,
		})
		return
	}

	http.Redirect(w, r, "/?category="+models.CategoryAll, http.StatusSeeOther)
}
