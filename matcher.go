package pwl

import (
	"sort"
	"strings"
)

// matchMode selects whether the Matcher compares scalars exactly or
// folds case while walking Branch children and computing the final Leaf
// distance.
type matchMode uint8

const (
	modeExact matchMode = iota
	modeFold
)

// match is a single trie string produced by enumerate, together with the
// number of edit-distance errors it cost relative to the query.
type match struct {
	word   string
	errors int
}

// enumerate walks the subtrie rooted at n, calling fn once for every
// stored string within maxErrors of query (already normalized, and
// already lowercased by the caller when mode == modeFold). Each string is
// reported once, in the order the walk first reached it, with the fewest
// errors any path to it cost. fn returning false stops further calls and
// makes enumerate return false.
//
// This is a branch-and-bound walk: at each Branch it interleaves an
// error-free "match and descend" step with four error-costing moves
// (insertion, deletion, substitution, transposition) once the error
// budget allows them; a Leaf child other than the exact match is
// compared whole (edge key plus suffix) against the rest of the query.
// Reaching a Leaf (the EOS sentinel is simply the Leaf with an empty
// value) folds any leftover query scalars in as deletions via the full
// edit-distance function, since there is no more trie structure left to
// exploit once the recursion is off the Branch chain.
func enumerate(n *node, query string, maxErrors int, mode matchMode, fn func(match) bool) bool {
	var order []string
	best := make(map[string]int)
	search(n, []rune(query), 0, 0, maxErrors, mode, "", func(m match) bool {
		e, seen := best[m.word]
		if !seen {
			order = append(order, m.word)
		}
		if !seen || m.errors < e {
			best[m.word] = m.errors
		}
		return true
	})
	for _, w := range order {
		if !fn(match{word: w, errors: best[w]}) {
			return false
		}
	}
	return true
}

func search(n *node, query []rune, wordPos, numErrors, maxErrors int, mode matchMode, path string, fn func(match) bool) bool {
	if numErrors > maxErrors || n.isEmpty() {
		return true
	}
	if n.kind == kindLeaf {
		remaining := query[wordPos:]
		v := n.value
		if mode == modeFold {
			v = foldLower(v)
		}
		total := numErrors + editDistance([]rune(v), remaining)
		if total <= maxErrors {
			if !fn(match{word: path + n.value, errors: total}) {
				return false
			}
		}
		return true
	}
	return searchBranch(n, query, wordPos, numErrors, maxErrors, mode, path, fn)
}

// lookupChild looks up key among b's children, trying key's uppercase
// form as a fallback in fold mode: the query has already been lowercased
// by the caller, and the trie preserves original casing in its edge keys,
// so a title-case stored word is only reachable by also trying the
// uppercase key. Any mismatch this doesn't paper over (e.g. full
// all-caps storage) is still tolerated by the ordinary error budget. It
// returns the key actually found, so the matched path keeps the trie's
// casing.
func lookupChild(b *node, key string, mode matchMode) (string, *node, bool) {
	if c, ok := b.children[key]; ok {
		return key, c, true
	}
	if mode == modeFold && key != "" {
		if upper := strings.ToUpper(key); upper != key {
			if c, ok := b.children[upper]; ok {
				return upper, c, true
			}
		}
	}
	return "", nil, false
}

func searchBranch(n *node, query []rune, wordPos, numErrors, maxErrors int, mode matchMode, path string, fn func(match) bool) bool {
	hasNext := wordPos < len(query)
	var cKey string
	if hasNext {
		cKey = string(query[wordPos])
	}

	// Match-and-descend: an exact (mode-folded) hit costs nothing. When
	// the query is exhausted, cKey == "" and this looks up the EOS
	// sentinel, i.e. "the word ends exactly here".
	if k, child, ok := lookupChild(n, cKey, mode); ok {
		next := wordPos
		if hasNext {
			next++
		}
		if !search(child, query, next, numErrors, maxErrors, mode, path+k, fn) {
			return false
		}
	}

	if numErrors >= maxErrors {
		return true
	}
	errNum := numErrors + 1

	// Insertion: the query has a scalar the trie doesn't need to match;
	// skip it and stay on the same node.
	if hasNext {
		if !search(n, query, wordPos+1, errNum, maxErrors, mode, path, fn) {
			return false
		}
	}

	keys := make([]string, 0, len(n.children))
	for key := range n.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == "" {
			continue // the EOS slot is a terminal marker, not a scalar edge
		}
		if hasNext && key == cKey {
			continue // already explored as the exact match above
		}
		child := n.children[key]

		// A Leaf child holds the rest of exactly one word: comparing key
		// plus its suffix with the rest of the query in one step covers
		// deletion, substitution, and a transposition that crosses from
		// the edge key into the suffix.
		if child.kind == kindLeaf {
			if !search(leaf(key+child.value), query, wordPos, numErrors, maxErrors, mode, path, fn) {
				return false
			}
			continue
		}

		// Deletion: the trie has an extra scalar (key) the query lacks.
		if !search(child, query, wordPos, errNum, maxErrors, mode, path+key, fn) {
			return false
		}

		// Substitution: push key, consume one query scalar.
		if hasNext {
			if !search(child, query, wordPos+1, errNum, maxErrors, mode, path+key, fn) {
				return false
			}
		}

		// Transposition: the next two query scalars appear swapped
		// relative to the trie — key matches the second, and child has
		// an edge for the first.
		if wordPos+2 <= len(query) {
			second := string(query[wordPos+1])
			if key == second {
				if gk, grandchild, ok := lookupChild(child, cKey, mode); ok {
					if !search(grandchild, query, wordPos+2, errNum, maxErrors, mode, path+key+gk, fn) {
						return false
					}
				}
			}
		}
	}
	return true
}
