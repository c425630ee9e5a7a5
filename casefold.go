package pwl

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// language.Und ("undetermined") tells golang.org/x/text/cases to apply
// the Unicode default case algorithm rather than any language-specific
// tailoring, so folding stays a locale-insensitive simple fold.
var (
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)
)

// normalize returns the NFD (canonical decomposition) form of s. All
// trie content and all match queries are normalized through this
// function before touching the trie.
func normalize(s string) string {
	return norm.NFD.String(s)
}

// foldLower returns the locale-insensitive lowercase form of s.
func foldLower(s string) string {
	return lowerCaser.String(s)
}

// foldUpper returns the locale-insensitive uppercase form of s.
func foldUpper(s string) string {
	return upperCaser.String(s)
}

// toTitleCase uppercases the entire word, then replaces the first scalar
// with its title-case form and lowercases the remainder. This is not the
// word-initial-capitalization behavior that golang.org/x/text/cases.Title
// implements for natural-language text.
func toTitleCase(word string) string {
	rs := []rune(foldUpper(word))
	if len(rs) == 0 {
		return word
	}
	rs[0] = unicode.ToTitle(rs[0])
	return string(rs[:1]) + foldLower(string(rs[1:]))
}

// isAllCaps reports whether word contains at least one uppercase letter
// and no lowercase or title-case letter. Letters of other categories
// (and non-letters) are ignored.
func isAllCaps(word string) bool {
	sawUpper := false
	for _, r := range word {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			sawUpper = true
		}
	}
	return sawUpper
}

// isTitleCaseWord reports whether word's first scalar is upper/title
// case and equal to its own title-case form, and no subsequent scalar is
// upper or title case.
func isTitleCaseWord(word string) bool {
	rs := []rune(word)
	if len(rs) == 0 {
		return false
	}
	first := rs[0]
	if !(unicode.IsUpper(first) || unicode.IsTitle(first)) {
		return false
	}
	if unicode.ToTitle(first) != first {
		return false
	}
	for _, r := range rs[1:] {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
	}
	return true
}
