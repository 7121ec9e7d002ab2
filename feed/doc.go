// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package feed turns backend rows into the ordered, decorated list the page
and the JSON API show.

# Pipeline

Load runs one pass per request:

 1. fetch every fact, or only the linked fact in direct-link mode
 2. keep facts in the selected category (case-insensitive, "all" keeps all)
 3. sort newest first or most up-voted first, stable on ties
 4. decorate each row with its category colour and vote buttons
 5. fetch comments for the visible facts in one batched call
 6. attach comments to their fact, newest first

Any failed fetch fails the load. Callers render an error state instead of a
partial list.

# Direct Links

A fact is addressed by the fragment "#fact-<id>". ParseFactRef accepts the
fragment, the bare anchor, or the id. Query.FactID > 0 selects direct-link
mode, which ignores the category filter.

# Vote Buttons

Button is the single place a vote control is built. The full render uses it
through Buttons and the post-vote patch uses it through ApplyVote, so a
patched row reads exactly like a freshly rendered one:

	👍 1,234
	👎 2
*/
package feed
