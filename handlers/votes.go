// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/Sam-M345/Factify/middleware"
	"github.com/Sam-M345/Factify/models"
	"github.com/Sam-M345/Factify/vote"
)

type VoteHandler struct {
	votes *vote.Controller
}

func NewVoteHandler(votes *vote.Controller) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// Vote handles POST /api/facts/{id}/votes
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, ok := factID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res, err := h.votes.Submit(r.Context(), vote.Ballot{
		FactID:   id,
		VoteType: req.VoteType,
		Comment:  req.Comment,
	})
	if err != nil {
		code, msg := statusFor(err, msgVoteFailed)
		middleware.ErrorResponse(w, code, msg)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		FactID:   res.FactID,
		Button:   res.Button,
		Comments: res.Comments,
	})
}

// VoteForm handles POST /facts/{id}/votes from the page and redirects back
func (h *VoteHandler) VoteForm(w http.ResponseWriter, r *http.Request) {
	target := returnTo(r)

	id, ok := factID(r)
	if !ok {
		redirectWithError(w, r, target, "notfound")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, middleware.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, target, "vote")
		return
	}

	_, err := h.votes.Submit(r.Context(), vote.Ballot{
		FactID:   id,
		VoteType: models.VoteType(r.PostForm.Get("vote_type")),
		Comment:  r.PostForm.Get("comment"),
	})
	if err != nil {
		redirectWithError(w, r, target, flashCode(err))
		return
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}
