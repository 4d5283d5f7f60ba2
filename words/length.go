package words

import (
	"unicode/utf8"

	"github.com/npillmayer/wordfp"
)

// Len returns the length of word in characters (Unicode code points).
func Len(word string) int {
	return utf8.RuneCountInString(word)
}

// HasLength is a predicate testing if word consists of exactly n characters.
// For negative n it is always false.
func HasLength(word string, n int) bool {
	return n >= 0 && Len(word) == n
}

// CountLength returns the number of words consisting of exactly n characters.
// n may be 0 (counting empty words) or exceed the length of the longest word;
// negative values of n never match.
func CountLength(words []string, n int) int {
	if n < 0 {
		return 0
	}
	return wordfp.CountIf(words, wordfp.Bind(HasLength, n))
}
