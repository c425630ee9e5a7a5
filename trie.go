package pwl

import "unicode/utf8"

// trie is a prefix-compressed store of NFD-normalized strings. The zero
// value is a trie with no words (root == nil, the absent subtrie).
type trie struct {
	root *node
}

// insert adds word (already NFD-normalized by the caller) to t.
func (t *trie) insert(word string) {
	t.root = insertNode(t.root, word)
}

// remove deletes word (already NFD-normalized by the caller) from t, if
// present. Removing an absent word is a no-op.
func (t *trie) remove(word string) {
	t.root = removeNode(t.root, word)
}

// contains reports whether word (already NFD-normalized) is stored
// exactly in t. This runs the Matcher with max_errors = 0: with no error
// budget only the exact match-and-descend step is ever taken.
func (t *trie) contains(word string) bool {
	found := false
	enumerate(t.root, word, 0, modeExact, func(m match) bool {
		if m.word == word {
			found = true
			return false // halt, exact hit is all we need
		}
		return true
	})
	return found
}

// headRune splits word into its first scalar's UTF-8 encoding and the
// remaining tail. word == "" reports key == "".
func headRune(word string) (key, rest string) {
	if word == "" {
		return "", ""
	}
	_, size := utf8.DecodeRuneInString(word)
	return word[:size], word[size:]
}

// insertNode inserts word into the subtrie rooted at n and returns the
// (possibly new) root of that subtrie: an empty subtrie becomes a Leaf;
// a colliding Leaf is promoted to a Branch holding both the old and new
// value; a Branch just delegates to insertChild.
func insertNode(n *node, word string) *node {
	if n.isEmpty() {
		return leaf(word)
	}
	switch n.kind {
	case kindLeaf:
		if n.value == word {
			return n // already present, idempotent
		}
		b := newBranch()
		insertChild(b, n.value)
		insertChild(b, word)
		return b
	case kindBranch:
		insertChild(n, word)
		return n
	}
	return n
}

// insertChild inserts word under Branch b, peeling off its first scalar
// as the child key (or installing the EOS sentinel under "" when word is
// exhausted).
func insertChild(b *node, word string) {
	key, rest := headRune(word)
	if key == "" {
		b.children[""] = eos
		return
	}
	b.children[key] = insertNode(b.children[key], rest)
}

// removeNode deletes word from the subtrie rooted at n and returns the
// (possibly new, possibly nil) root of that subtrie.
func removeNode(n *node, word string) *node {
	if n.isEmpty() {
		return n
	}
	switch n.kind {
	case kindLeaf:
		if n.value == word {
			return nil
		}
		return n
	case kindBranch:
		return removeChild(n, word)
	}
	return n
}

// removeChild deletes word from Branch b and applies the collapse rule:
// once a Branch is down to exactly one child and that child is a Leaf,
// the edge key is concatenated onto the Leaf's value, producing a single
// new Leaf in place of the Branch. A Branch left with one Branch child
// is not collapsed — only a Leaf child has a value to merge the edge
// key into.
func removeChild(b *node, word string) *node {
	key, rest := headRune(word)
	child, ok := b.children[key]
	if !ok {
		return b // word not present under this branch
	}
	if key == "" {
		delete(b.children, "")
	} else {
		newChild := removeNode(child, rest)
		if newChild == nil {
			delete(b.children, key)
		} else {
			b.children[key] = newChild
		}
	}
	if len(b.children) == 0 {
		return nil
	}
	if len(b.children) == 1 {
		for k, c := range b.children {
			if c.kind == kindLeaf {
				return leaf(k + c.value)
			}
		}
	}
	return b
}
