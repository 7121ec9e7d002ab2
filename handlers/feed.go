// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Sam-M345/Factify/backend"
	"github.com/Sam-M345/Factify/cliparse"
	"github.com/Sam-M345/Factify/feed"
	"github.com/Sam-M345/Factify/middleware"
	"github.com/Sam-M345/Factify/models"
	"github.com/Sam-M345/Factify/prefs"
	"github.com/Sam-M345/Factify/render"
)

type FeedHandler struct {
	store    backend.Store
	pipeline *feed.Pipeline
	prefs    prefs.Store
	renderer *render.Renderer
	cfg      cliparse.Config
}

func NewFeedHandler(store backend.Store, prefStore prefs.Store, renderer *render.Renderer, cfg cliparse.Config) *FeedHandler {
	return &FeedHandler{
		store:    store,
		pipeline: feed.NewPipeline(store),
		prefs:    prefStore,
		renderer: renderer,
		cfg:      cfg,
	}
}

// query builds the feed query from ?category, ?sort and ?fact. A valid sort
// parameter is persisted for the session; otherwise the stored one is used.
func (h *FeedHandler) query(r *http.Request) feed.Query {
	ctx := r.Context()
	session := middleware.SessionID(ctx)
	values := r.URL.Query()

	q := feed.Query{Category: values.Get("category")}

	if pref, ok := models.ParseSort(values.Get("sort")); ok {
		if err := prefs.SetSort(ctx, h.prefs, session, pref); err != nil {
			slog.Warn("failed to persist sort preference", "error", err)
		}
		q.Sort = pref
	} else {
		q.Sort = prefs.SortFor(ctx, h.prefs, session)
	}

	if ref := values.Get("fact"); ref != "" {
		if id, ok := feed.ParseFactRef(ref); ok {
			q.FactID = id
		}
	}

	return q
}

// Page handles GET /
func (h *FeedHandler) Page(w http.ResponseWriter, r *http.Request) {
	q := h.query(r)

	page := render.Page{
		Sort:      q.Sort,
		TextLimit: h.cfg.TextLimit,
		Alert:     flashMessages[r.URL.Query().Get("error")],
	}

	h.load(r.Context(), w, q, http.StatusOK, page)
}

// load fills page.View from the pipeline and writes the document
func (h *FeedHandler) load(ctx context.Context, w http.ResponseWriter, q feed.Query, status int, page render.Page) {
	view, err := h.pipeline.Load(ctx, q)
	if err != nil {
		code, msg := statusFor(err, msgLoadFailed)
		page.LoadError = msg
		// Keep the query so the page still knows its mode
		page.View = &feed.View{Query: q}
		if status == http.StatusOK {
			status = code
		}
	} else {
		page.View = view
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Page(w, page); err != nil {
		slog.Error("failed to render page", "error", err)
	}
}

// ListFacts handles GET /api/facts
func (h *FeedHandler) ListFacts(w http.ResponseWriter, r *http.Request) {
	view, err := h.pipeline.Load(r.Context(), h.query(r))
	if err != nil {
		code, msg := statusFor(err, msgLoadFailed)
		middleware.ErrorResponse(w, code, msg)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}

// Comments handles GET /api/facts/{id}/comments
func (h *FeedHandler) Comments(w http.ResponseWriter, r *http.Request) {
	id, ok := factID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if _, err := h.store.GetFact(r.Context(), id); err != nil {
		code, msg := statusFor(err, msgLoadFailed)
		middleware.ErrorResponse(w, code, msg)
		return
	}

	comments, err := h.store.ListComments(r.Context(), id)
	if err != nil {
		slog.Error("failed to load comments", "fact_id", id, "error", err)
		code, msg := statusFor(err, msgLoadFailed)
		middleware.ErrorResponse(w, code, msg)
		return
	}
	feed.SortComments(comments)
	if comments == nil {
		comments = []models.Comment{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.CommentsResponse{
		FactID:   id,
		Comments: comments,
	})
}

// Share handles GET /api/facts/{id}/share
func (h *FeedHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, ok := factID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	fact, err := h.store.GetFact(r.Context(), id)
	if err != nil {
		code, msg := statusFor(err, msgLoadFailed)
		middleware.ErrorResponse(w, code, msg)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ShareResponse{
		FactID: id,
		URL:    h.renderer.ShareURL(id),
		Text:   render.ShareText(*fact),
	})
}

// SetSort handles PUT /api/preferences/sort
func (h *FeedHandler) SetSort(w http.ResponseWriter, r *http.Request) {
	var req models.SortRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	pref, ok := models.ParseSort(req.Sort)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sort must be recent or upvoted")
		return
	}

	session := middleware.SessionID(r.Context())
	if err := prefs.SetSort(r.Context(), h.prefs, session, pref); err != nil {
		slog.Error("failed to persist sort preference", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save preference")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SortResponse{Sort: pref})
}

// redirectWithError sends the browser back to target with a one-shot alert
func redirectWithError(w http.ResponseWriter, r *http.Request, target, code string) {
	u, err := url.Parse(target)
	if err != nil {
		u = &url.URL{Path: "/"}
	}
	values := u.Query()
	values.Set("error", code)
	u.RawQuery = values.Encode()
	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}

// returnTo is the feed URL the form was posted from, or "/"
func returnTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path != "/" || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}

	values := ref.Query()
	values.Del("error")
	if len(values) == 0 {
		return "/"
	}
	return "/?" + values.Encode()
}
