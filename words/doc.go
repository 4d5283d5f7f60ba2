/*
Package words implements a couple of utilities for lists of words: frequency
counting, duplicate removal, palindrome detection, length-based filtering and
rendering of ordered multisets.

A word is a whitespace-delimited token, treated as an opaque string. Words are
read from a text source in order, no punctuation stripping takes place:

	wl, err := words.ReadWords("words.txt")
	if err != nil {
	    return err // a *words.SourceError, carrying the path
	}
	freq := words.CountWords(wl)
	fmt.Println(words.RenderByLength(wl))

All functions apart from loading are pure and total: they do not modify their
input, do not share state between calls and never fail.

The length of a word is the number of Unicode code points it consists of.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package words

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wordfp.words'.
func tracer() tracing.Trace {
	return tracing.Select("wordfp.words")
}
