// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the page and the JSON API.

# Handler Types

Each handler is a struct built from its collaborators:

  - FeedHandler: the page, fact listing, comments, share links, sort preference
  - VoteHandler: votes with optional comments
  - FactHandler: new fact submission

	feedHandler := handlers.NewFeedHandler(store, prefStore, renderer, cfg)
	voteHandler := handlers.NewVoteHandler(vote.NewController(store, cfg.AtomicVotes))
	factHandler := handlers.NewFactHandler(submission.NewService(store, cfg.TextLimit), feedHandler)

# Page Routes

	GET  /?category=&sort=&fact=  → Page
	POST /facts                   → CreateFactForm
	POST /facts/{id}/votes        → VoteForm

A sort given in the query is stored for the session. fact=<id> shows that
fact alone. Form posts redirect back to the feed (303). A failed vote comes
back with ?error=<code>, which renders a banner for known codes only. A
rejected new fact redraws the page with the form open and the values kept.

# API Routes

	GET  /api/facts                 → ListFacts
	POST /api/facts                 → CreateFact
	POST /api/facts/{id}/votes      → Vote
	GET  /api/facts/{id}/comments   → Comments
	GET  /api/facts/{id}/share      → Share
	PUT  /api/preferences/sort      → SetSort

# Status Codes

	400  validation failure, bad id, unknown vote type
	404  fact not found
	502  backend read or write failed
*/
package handlers
