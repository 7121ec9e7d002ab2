// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared by the
backend clients, the view pipeline, and the HTTP handlers.

# Domain Types

  - Fact: a sourced assertion with two vote counters
  - NewFact: insert body for a fact (no id, no created_at)
  - Comment: free text attached to one vote on one fact
  - Category: one of eight fixed topics with a display colour

JSON field names follow the backend's columns, so the same structs are
decoded from the REST backend and encoded to API clients:

	{"id":1,"text":"…","source":"https://…","category":"science",
	 "votesUp":3,"votesDown":0,"created_at":"2024-05-01T10:00:00Z"}

# Request Types

  - CreateFactRequest: text, source, category
  - VoteRequest: vote_type, comment
  - SortRequest: sort

# Response Types

  - VoteButton: vote_type, emoji, count, label
  - VoteResponse: fact_id, button, comments
  - CommentsResponse: fact_id, comments
  - ShareResponse: fact_id, url, text
  - SortResponse: sort
  - ErrorResponse: error, message

# Constants

Vote counters:

	VoteUp   = "votesUp"
	VoteDown = "votesDown"

Sort preferences:

	SortRecent  = "recent"
	SortUpvoted = "upvoted"
*/
package models
