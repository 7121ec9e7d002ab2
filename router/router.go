// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Sam-M345/Factify/backend"
	"github.com/Sam-M345/Factify/cliparse"
	"github.com/Sam-M345/Factify/handlers"
	"github.com/Sam-M345/Factify/middleware"
	"github.com/Sam-M345/Factify/prefs"
	"github.com/Sam-M345/Factify/render"
	"github.com/Sam-M345/Factify/submission"
	"github.com/Sam-M345/Factify/vote"
)

func NewRouter(store backend.Store, prefStore prefs.Store, cfg cliparse.Config) (chi.Router, error) {
	renderer, err := render.New(cfg.Location(), cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize handlers
	feedHandler := handlers.NewFeedHandler(store, prefStore, renderer, cfg)
	factHandler := handlers.NewFactHandler(submission.NewService(store, cfg.TextLimit), feedHandler)
	voteHandler := handlers.NewVoteHandler(vote.NewController(store, cfg.AtomicVotes))

	r := chi.NewRouter()

	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session)

		// Page and form posts
		r.Get("/", middleware.WithLogging(feedHandler.Page))
		r.Post("/facts", middleware.WithLogging(factHandler.CreateFactForm))
		r.Post("/facts/{id}/votes", middleware.WithLogging(voteHandler.VoteForm))

		// JSON API
		r.Route("/api", func(r chi.Router) {
			r.Get("/facts", middleware.WithLogging(feedHandler.ListFacts))
			r.Post("/facts", middleware.WithLogging(factHandler.CreateFact))
			r.Post("/facts/{id}/votes", middleware.WithLogging(voteHandler.Vote))
			r.Get("/facts/{id}/comments", middleware.WithLogging(feedHandler.Comments))
			r.Get("/facts/{id}/share", middleware.WithLogging(feedHandler.Share))
			r.Put("/preferences/sort", middleware.WithLogging(feedHandler.SetSort))
		})
	})

	return r, nil
}
