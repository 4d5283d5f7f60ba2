package multiset

import (
	"fmt"
	"sort"

	"golang.org/x/exp/slices"
)

// xnode is a node of the B-tree. Leafs do not have children; inner nodes
// have exactly len(items)+1 children.
type xnode[T any] struct {
	items    []T
	children []*xnode[T]
}

func (node *xnode[T]) String() string {
	if node == nil {
		return "⟨⟩"
	}
	return fmt.Sprintf("%v", node.items)
}

func (node *xnode[T]) isLeaf() bool {
	return len(node.children) == 0
}

func (node *xnode[T]) overfull(maxItems int) bool {
	return len(node.items) > maxItems
}

// upperBound finds the first slot in node holding an item greater than item.
// Equal items will be skipped, which keeps duplicates in insertion order.
func (node *xnode[T]) upperBound(item T, cmp func(a, b T) int) int {
	return sort.Search(len(node.items), func(i int) bool {
		return cmp(item, node.items[i]) < 0
	})
}

func (node *xnode[T]) clone() xnode[T] {
	cow := xnode[T]{items: slices.Clone(node.items)}
	if !node.isLeaf() {
		cow.children = slices.Clone(node.children)
	}
	return cow
}

func (node *xnode[T]) withInsertedItem(item T, at int) xnode[T] {
	assertThat(at <= len(node.items), "given item index out of range: %d < %d", len(node.items), at)
	cow := node.clone() // change-on-write behaviour requires copying
	cow.items = slices.Insert(cow.items, at, item)
	return cow
}

// split splits a node at its median item. It is not checked if the node is
// indeed overfull. node itself is left untouched.
func (node *xnode[T]) split() (left *xnode[T], median T, right *xnode[T]) {
	half := len(node.items) / 2
	median = node.items[half]
	left = &xnode[T]{items: slices.Clone(node.items[:half])}
	right = &xnode[T]{items: slices.Clone(node.items[half+1:])}
	if !node.isLeaf() {
		left.children = slices.Clone(node.children[:half+1])
		right.children = slices.Clone(node.children[half+1:])
	}
	return
}

// walk visits the items of a subtree in order. It returns false as soon as f does.
func (node *xnode[T]) walk(f func(T) bool) bool {
	for i, item := range node.items {
		if !node.isLeaf() && !node.children[i].walk(f) {
			return false
		}
		if !f(item) {
			return false
		}
	}
	if !node.isLeaf() {
		return node.children[len(node.items)].walk(f)
	}
	return true
}

// ---------------------------------------------------------------------------

func (tree Tree[T]) locate(item T, pathBuf slotPath[T]) slotPath[T] {
	path := pathBuf[:0] // we track the path to the item's slot
	if tree.root == nil {
		return path
	}
	node := tree.root // walking nodes, start search at the top
	for !node.isLeaf() {
		index := node.upperBound(item, tree.cmp)
		path = append(path, slot[T]{node: node, index: index})
		node = node.children[index]
	}
	path = append(path, slot[T]{node: node, index: node.upperBound(item, tree.cmp)})
	return path
}

func (tree Tree[T]) incarnation(root *xnode[T], depth int) Tree[T] {
	newTree := tree
	newTree.root = root
	newTree.depth = depth
	newTree.size = tree.size + 1
	return newTree
}

func (tree Tree[T]) each(f func(T) bool) {
	if tree.root == nil {
		return
	}
	tree.root.walk(f)
}

// splitAndClone creates a fold step, rebuilding a parent node on top of a new
// incarnation of one of its children. Overfull children will be split, with
// the median moving up into the parent.
func splitAndClone[T any](maxItems int) func(slot[T], slot[T]) slot[T] {
	return func(parent, child slot[T]) slot[T] {
		cow := parent.node.clone()
		if child.node.overfull(maxItems) {
			left, median, right := child.node.split()
			tracer().Debugf("split: child %s ⇒ %s | %v | %s", child.node, left, median, right)
			cow.items = slices.Insert(cow.items, parent.index, median)
			cow.children[parent.index] = left
			cow.children = slices.Insert(cow.children, parent.index+1, right)
		} else {
			cow.children[parent.index] = child.node
		}
		return slot[T]{node: &cow, index: parent.index}
	}
}
