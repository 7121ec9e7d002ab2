// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Sam-M345/Factify/backend"
	"github.com/Sam-M345/Factify/submission"
	"github.com/Sam-M345/Factify/vote"
)

// User-facing messages
const (
	msgLoadFailed   = "Error loading facts. Please try again later."
	msgNotFound     = "Fact not found."
	msgVoteFailed   = "There was an error updating the vote. Please try again."
	msgCommentLost  = "Your vote was counted, but the comment could not be saved. Please try again."
	msgCreateFailed = "There was an error creating your fact. Please try again."
	msgInvalidVote  = "vote_type must be votesUp or votesDown"
	msgInvalidID    = "invalid fact id"
)

// Flash codes carried in ?error= after a redirect. Only known codes render.
var flashMessages = map[string]string{
	"vote":     msgVoteFailed,
	"comment":  msgCommentLost,
	"notfound": msgNotFound,
	"invalid":  msgInvalidVote,
	"create":   msgCreateFailed,
}

// flashCode picks the redirect code for err
func flashCode(err error) string {
	switch {
	case errors.Is(err, backend.ErrNotFound):
		return "notfound"
	case errors.Is(err, backend.ErrInvalidVoteType):
		return "invalid"
	case errors.Is(err, vote.ErrCommentNotSaved):
		return "comment"
	default:
		return "vote"
	}
}

// statusFor maps a domain error to an HTTP status and a message safe to show.
// fallback is used for backend write failures.
func statusFor(err error, fallback string) (int, string) {
	var ve *submission.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Error()
	case errors.Is(err, backend.ErrInvalidVoteType):
		return http.StatusBadRequest, msgInvalidVote
	case errors.Is(err, backend.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, vote.ErrCommentNotSaved):
		return http.StatusBadGateway, msgCommentLost
	case backend.IsWrite(err):
		return http.StatusBadGateway, fallback
	case backend.IsFetch(err):
		return http.StatusBadGateway, msgLoadFailed
	default:
		return http.StatusInternalServerError, fallback
	}
}

// factID reads the {id} route parameter
func factID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
