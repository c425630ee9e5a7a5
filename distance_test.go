package pwl

import (
	"math/rand"
	"testing"
)

// levenshteinHelper is a textbook recursive Levenshtein distance (no
// transposition), used as an independent reference for the cases below
// where no transposition is possible.
func levenshteinHelper(s, t []rune) int {
	if len(s) == 0 {
		return len(t)
	}
	if len(t) == 0 {
		return len(s)
	}
	if s[len(s)-1] == t[len(t)-1] {
		return levenshteinHelper(s[:len(s)-1], t[:len(t)-1])
	}
	x := levenshteinHelper(s, t[:len(t)-1])
	y := levenshteinHelper(s[:len(s)-1], t)
	z := levenshteinHelper(s[:len(s)-1], t[:len(t)-1])
	d := x
	if y < d {
		d = y
	}
	if z < d {
		d = z
	}
	return 1 + d
}

func TestEditDistanceIdentical(t *testing.T) {
	for _, s := range []string{"", "a", "foo", "résumé"} {
		if d := editDistance(runeSlice(s), runeSlice(s)); d != 0 {
			t.Errorf("editDistance(%q, %q) = %d, want 0", s, s, d)
		}
	}
}

func TestEditDistanceInsertDelete(t *testing.T) {
	if d := editDistance(runeSlice("foo"), runeSlice("fooo")); d != 1 {
		t.Errorf("editDistance(foo, fooo) = %d, want 1", d)
	}
	if d := editDistance(runeSlice("fooo"), runeSlice("foo")); d != 1 {
		t.Errorf("editDistance(fooo, foo) = %d, want 1", d)
	}
}

func TestEditDistanceSubstitution(t *testing.T) {
	if d := editDistance(runeSlice("cat"), runeSlice("bat")); d != 1 {
		t.Errorf("editDistance(cat, bat) = %d, want 1", d)
	}
}

func TestEditDistanceTransposition(t *testing.T) {
	if d := editDistance(runeSlice("ab"), runeSlice("ba")); d != 1 {
		t.Errorf("editDistance(ab, ba) = %d, want 1 (transposition costs 1)", d)
	}
	if d := editDistance(runeSlice("teh"), runeSlice("the")); d != 1 {
		t.Errorf("editDistance(teh, the) = %d, want 1", d)
	}
}

func TestEditDistanceAgainstLevenshteinWhenNoSwapsHelp(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"flaw", "lawn"},
		{"intention", "execution"},
		{"", "abc"},
		{"abc", ""},
	}
	for _, p := range pairs {
		got := editDistance(runeSlice(p[0]), runeSlice(p[1]))
		want := levenshteinHelper(runeSlice(p[0]), runeSlice(p[1]))
		if got != want {
			t.Errorf("editDistance(%q, %q) = %d, want %d (matches plain Levenshtein)", p[0], p[1], got, want)
		}
	}
}

func TestEditDistanceFuzzTriangleInequality(t *testing.T) {
	rand.Seed(1)
	alphabet := []rune{'a', 'b', 'c', 'ä', '1'}
	randWord := func(n int) []rune {
		rs := make([]rune, n)
		for i := range rs {
			rs[i] = alphabet[rand.Intn(len(alphabet))]
		}
		return rs
	}
	for i := 0; i < 500; i++ {
		a := randWord(rand.Intn(6))
		b := randWord(rand.Intn(6))
		c := randWord(rand.Intn(6))
		ab := editDistance(a, b)
		bc := editDistance(b, c)
		ac := editDistance(a, c)
		if ac > ab+bc {
			t.Fatalf("triangle inequality violated: d(%q,%q)=%d + d(%q,%q)=%d < d(%q,%q)=%d",
				string(a), string(b), ab, string(b), string(c), bc, string(a), string(c), ac)
		}
	}
}
