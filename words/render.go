package words

import (
	"strings"

	"github.com/npillmayer/wordfp/multiset"
)

// Lexicographic is the default ordering of words: ascending byte order.
func Lexicographic(a, b string) int {
	return strings.Compare(a, b)
}

// ByLength orders words by length first, ties are ordered lexicographically.
func ByLength(a, b string) int {
	if d := Len(a) - Len(b); d != 0 {
		return d
	}
	return strings.Compare(a, b)
}

// Render puts all words into a multiset ordered by cmp and returns the
// ordered words, separated by a single space. Duplicates are retained.
func Render(words []string, cmp func(a, b string) int) string {
	set := multiset.From(cmp, words...)
	tracer().Debugf("rendering multiset of %d words", set.Len())
	return strings.Join(set.Items(), " ")
}

// RenderDefault renders words in lexicographic order.
func RenderDefault(words []string) string {
	return Render(words, Lexicographic)
}

// RenderByLength renders words ordered by length, then lexicographically.
//
//     RenderByLength([]string{"bb", "a", "cc", "a"})   // "a a bb cc"
//
func RenderByLength(words []string) string {
	return Render(words, ByLength)
}
