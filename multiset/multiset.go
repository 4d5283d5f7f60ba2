package multiset

import (
	"iter"

	"github.com/npillmayer/wordfp"
	"github.com/npillmayer/wordfp/maybe"
)

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding clones of nodes.

- A new modified incarnation of a tree always is reflected by a new tree.root.

- Nodes hold items only; there is no separate key. The comparator decides the
  position of an item, and items comparing equal are never merged.

*/

const defaultDegree = 4

// Tree is an immutable multiset of items of type T, sorted by a comparator.
// Use Immutable to create an empty tree:
//
//     set := multiset.Immutable(strings.Compare)
//     set = set.With("b").With("a").With("b")
//     set.Items()   // returns [a b b]
//
type Tree[T any] struct {
	props
	root  *xnode[T]
	depth int
	size  int
	cmp   func(a, b T) int
}

type props struct {
	maxItems int // a node holding more than maxItems items will be split
}

// Immutable constructs an empty multiset ordered by cmp, with options, if you need any.
// cmp has to return a negative number if a < b, zero if a == b and a positive number
// if a > b. Passing a nil comparator is a programming error.
//
//     tree := multiset.Immutable(strings.Compare, multiset.Degree(16))
//
func Immutable[T any](cmp func(a, b T) int, opts ...Option) Tree[T] {
	assertThat(cmp != nil, "cannot create a multiset without a comparator")
	tree := Tree[T]{cmp: cmp}
	tree.props = Degree(defaultDegree)(tree.props)
	for _, option := range opts {
		tree.props = option(tree.props)
	}
	return tree
}

// From creates a multiset ordered by cmp, containing items.
func From[T any](cmp func(a, b T) int, items ...T) Tree[T] {
	return wordfp.Fold(items, Immutable(cmp), Tree[T].With)
}

// Option is a type to help initializing multisets at creation time.
type Option func(props) props

// Degree is an option to set the minimum number of children an inner node of the tree owns.
// The lower bound for the degree is 2. Nodes will hold at most 2·degree-1 items.
func Degree(n int) Option {
	return func(p props) props {
		n = max(2, n)
		p.maxItems = 2*n - 1
		return p
	}
}

// --- API -------------------------------------------------------------------

// Len returns the number of items in the multiset, counting duplicates.
func (tree Tree[T]) Len() int {
	return tree.size
}

// With returns a copy of a tree with item inserted. Items comparing equal to item
// will precede it. The receiver remains unchanged.
func (tree Tree[T]) With(item T) Tree[T] {
	assertThat(tree.cmp != nil, "tree has no comparator; create it with Immutable(…)")
	if tree.root == nil { // virgin tree => insert first node and return
		return tree.incarnation(&xnode[T]{items: []T{item}}, 1)
	}
	var path slotPath[T] = make([]slot[T], 0, tree.depth)
	path = tree.locate(item, path)
	tracer().Debugf("insert: slot path = %s", path)
	leafSlot := path.last()
	assertThat(leafSlot.node.isLeaf(), "attempt to insert item at non-leaf")
	cow := leafSlot.node.withInsertedItem(item, leafSlot.index) // copy-on-write
	top := path.dropLast().foldR(splitAndClone[T](tree.maxItems),
		slot[T]{node: &cow, index: leafSlot.index},
	)
	depth := tree.depth
	if top.node.overfull(tree.maxItems) {
		left, median, right := top.node.split()
		top = slot[T]{node: &xnode[T]{
			items:    []T{median},
			children: []*xnode[T]{left, right},
		}}
		depth++
		tracer().Debugf("insert: new root = %s, depth = %d", top.node, depth)
	}
	return tree.incarnation(top.node, depth)
}

// Count returns the number of items in the multiset comparing equal to item.
func (tree Tree[T]) Count(item T) int {
	count := 0
	tree.each(func(x T) bool {
		c := tree.cmp(item, x)
		if c == 0 {
			count++
		}
		return c >= 0 // no need to continue past item
	})
	return count
}

// All returns an iterator over the items of the multiset, in comparator order.
func (tree Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		tree.each(yield)
	}
}

// Items returns the items of the multiset as a sorted slice.
func (tree Tree[T]) Items() []T {
	items := make([]T, 0, tree.size)
	tree.each(func(x T) bool {
		items = append(items, x)
		return true
	})
	return items
}

// Min returns the smallest item, or Nothing for an empty multiset.
// If more than one item compares equal to the minimum, the first one inserted is returned.
func (tree Tree[T]) Min() maybe.Maybe[T] {
	if tree.root == nil {
		return maybe.Nothing[T]()
	}
	node := tree.root
	for !node.isLeaf() {
		node = node.children[0]
	}
	return maybe.Just(node.items[0])
}

// Max returns the largest item, or Nothing for an empty multiset.
// If more than one item compares equal to the maximum, the last one inserted is returned.
func (tree Tree[T]) Max() maybe.Maybe[T] {
	if tree.root == nil {
		return maybe.Nothing[T]()
	}
	node := tree.root
	for !node.isLeaf() {
		node = node.children[len(node.children)-1]
	}
	return maybe.Just(node.items[len(node.items)-1])
}
