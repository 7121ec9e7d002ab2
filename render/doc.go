// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render draws the feed page from embedded html/template files.

	templates/layout.html  full document, "layout"
	templates/facts.html   the list ("facts") and one row ("fact")

Output depends only on the Page value, the configured time zone, and the
base URL, so rendering the same state twice yields the same bytes.

Template functions:

	color      category colour
	date       strftime "%b %e, %Y %H:%M" in the configured zone
	shareURL   <base>/#fact-<id>
	anchor     fact-<id>
	emoji      vote emoji
	verb       "Vote up" / "Vote down"

The page carries a small inline script for the form toggle, the character
counter, share links, in-place vote patching, and "#fact-<id>" fragments.
Forms still post without it.
*/
package render
