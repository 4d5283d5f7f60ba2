/*
Package multiset implements a persistent (immutable) in-memory sorted multiset.

Items are kept in a B-tree ordered by a comparator the client hands in at
creation time. Unlike a map or a set, a multiset retains duplicates: inserting
an item which compares equal to items already present places it after them,
thus equal items are kept in insertion order.

Every “modification” creates a new incarnation of the tree. Only the nodes on the
path from the root to the insertion point are copied (copy-on-write); all other
nodes are shared between incarnations, transparently to clients.
Immutable trees are inherently concurrency-safe.

	byLength := func(a, b string) int { return len(a) - len(b) }
	set := multiset.Immutable(byLength)
	set = set.With("ccc").With("a").With("bb")
	fmt.Println(set.Items())   // [a bb ccc]

A good introduction to B-trees and their algorithms may be found at
https://algorithmtutor.com/Data-Structures/Tree/B-Trees/.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package multiset

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wordfp.multiset'.
func tracer() tracing.Trace {
	return tracing.Select("wordfp.multiset")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("multiset: "+msg, msgargs...)
		panic(msg)
	}
}
