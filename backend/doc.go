// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package backend defines the data backend contract and its PostgREST client.

# Store

Store is the whole surface the rest of the application sees:

	ListFacts(ctx)                          GET   <facts>?select=*
	GetFact(ctx, id)                        GET   <facts>?id=eq.<id>
	UpdateVotes(ctx, id, voteType, count)   PATCH <facts>?id=eq.<id>
	InsertFact(ctx, fact)                   POST  <facts>
	ListComments(ctx, ids...)               GET   <comments>?fact_id=in.(…)
	InsertComment(ctx, comment)             POST  <comments>

RESTStore implements it over HTTP. The db package implements it over SQL
for local development and tests.

Stores that can bump a counter in one statement also implement
Incrementer. The vote controller uses it when atomic votes are enabled.

# Errors

Failures are reported as *Error with a Kind:

  - KindFetch: a read failed or returned a non-2xx status
  - KindWrite: an insert or update was rejected

Status and Body carry the backend's response for logging. Use IsFetch
and IsWrite rather than inspecting the type directly. A lookup that
matches no row returns ErrNotFound.

No request is retried and none carries a deadline of its own; callers
control lifetime through the context.
*/
package backend
