package multiset

import (
	"fmt"
	"strconv"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path.
type slot[T any] struct {
	node  *xnode[T]
	index int
}

func (s slot[T]) String() string {
	return strconv.Itoa(s.index) + "@" + s.node.String()
}

// --- Path ------------------------------------------------------------------

type slotPath[T any] []slot[T]

func (path slotPath[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[T]) last() slot[T] {
	if len(path) == 0 {
		return slot[T]{}
	}
	return path[len(path)-1]
}

func (path slotPath[T]) dropLast() slotPath[T] {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}

// foldR folds a path from the leaf up to the root, starting with zero.
func (path slotPath[T]) foldR(f func(slot[T], slot[T]) slot[T], zero slot[T]) slot[T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}
