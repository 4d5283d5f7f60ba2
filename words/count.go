package words

import (
	"github.com/npillmayer/wordfp"
	"github.com/npillmayer/wordfp/maybe"
	"golang.org/x/exp/slices"
)

// Frequencies maps words to the number of their occurrences.
// Keys are matched exactly, i.e. case-sensitive.
type Frequencies map[string]int

// CountWords counts the occurrences of each word in words.
// The counts sum up to len(words).
func CountWords(words []string) Frequencies {
	return wordfp.Fold(words, make(Frequencies), tally)
}

// tally is the step function of a word count fold.
func tally(freq Frequencies, word string) Frequencies {
	freq[word]++
	return freq
}

// Total returns the sum of all counts.
func (freq Frequencies) Total() int {
	total := 0
	for _, n := range freq {
		total += n
	}
	return total
}

// Lookup returns the count for word, or Nothing if word has not been counted.
func (freq Frequencies) Lookup(word string) maybe.Maybe[int] {
	if n, ok := freq[word]; ok {
		return maybe.Just(n)
	}
	return maybe.Nothing[int]()
}

// Words returns the counted words in ascending order.
func (freq Frequencies) Words() []string {
	keys := make([]string, 0, len(freq))
	for word := range freq {
		keys = append(keys, word)
	}
	slices.Sort(keys)
	return keys
}
