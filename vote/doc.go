// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package vote records votes and their optional comments.

# Sequence

Submit runs these steps in order, stopping at the first failure:

 1. GetFact(id)
 2. UpdateVotes(id, voteType, count+1)
 3. InsertComment, only when the trimmed comment is non-empty
 4. ListComments(id), sorted newest first

The result carries the patched vote button, built the same way as a full
render, and the fresh comment list when a comment was stored.

A failure after step 2 leaves the counter incremented. Nothing is rolled
back and the error says so.

# Races

Steps 1 and 2 are a read-modify-write. Votes on one fact that pass through
one Controller are serialised by a per-fact lock. Votes from other processes
can still be lost. When the controller is created with atomic set and the
store implements backend.Incrementer, steps 1 and 2 become one increment
and the race is gone.

# Cancellation

The sequence runs under context.WithoutCancel, so a client that goes away
mid-vote does not leave a counter written without its comment.
*/
package vote
