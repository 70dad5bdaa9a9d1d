// Package edgelist reads line-oriented edge lists and feeds them into the
// mutable-graph capability.
//
// Format, one edge per line:
//
//	<source> <target> [weight]
//
//	– source, target: non-negative integers, whitespace-separated.
//	– weight: optional signed integer, present only on three-token lines.
//	– blank lines and lines starting with '#' are skipped.
//
// Parse and ParseReader are pure producers of (source, target, optional
// weight) triples; they build no graph themselves. Populate is the matching
// consumer, written against the core capability interfaces so any
// implementation can be the sink.
//
// Errors:
//
//	All failures — unreadable file, unreadable line, malformed line,
//	non-numeric vertex or weight token — wrap core.ErrInvalidOperation and
//	carry the 1-based line number plus the offending line text.
package edgelist
