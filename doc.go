// Package pwl implements a Personal Word List: an in-memory, Unicode-aware
// word index that answers two questions about a user's private vocabulary —
// "is this word known?" and "what known words look like this one?" — and
// optionally keeps itself in sync with a flat text file on disk.
//
// Words are stored in a prefix-compressed trie (node.go) keyed by Unicode
// scalar value after NFD normalization, so combining-character sequences
// that render identically collapse onto the same trie path regardless of
// how they arrived. A trie node is one of three variants — the absent
// subtrie, a compressed single-suffix leaf, or a branch keyed by single
// scalars — with the end-of-string marker itself represented as a leaf
// holding the empty string, shared across every branch in the process as a
// single pointer.
//
// Exact lookups (Check) walk the trie directly. Fuzzy lookups (Suggest) walk
// it under a bounded error budget, interleaving an error-free
// match-and-descend step with four error-costing moves — insertion,
// deletion, substitution, and adjacent transposition — so that a query
// within the budget of some stored word is always found, and the
// Damerau-Levenshtein distance it cost is reported alongside it
// (matcher.go, distance.go).
//
// A PWL's casing policy sits above the trie rather than inside it: the trie
// stores whatever casing was first added for a given normalized key, Check
// and Suggest fold title-case and all-caps queries down to the forms that
// are actually likely to be stored, and Suggest re-cases its results to
// track the casing of the query rather than the casing of the match.
//
// File-backed PWLs (Open) read and write a plain UTF-8 text file, one word
// per line, tolerating a leading byte-order mark, blank lines, "#"-prefixed
// comments, and lines that are individually malformed (too long, not valid
// UTF-8) by skipping just that line with a logged warning rather than
// failing the whole load.
package pwl
