package words

import (
	"golang.org/x/exp/slices"
)

// Deduplicate returns the distinct words of words, sorted in ascending
// byte order. words itself is not modified.
func Deduplicate(words []string) []string {
	distinct := make([]string, len(words))
	copy(distinct, words)
	slices.Sort(distinct)
	return slices.Compact(distinct)
}
