/*
Package wordfp holds a handful of generic combinators which the word
utilities of this module are built from.

The same traversal over a sequence may be written with an inline closure,
with a predicate value carrying some state, or with a free function whose
extra argument has been bound in advance. All of these end up as a
func(T) bool in Go, so one combinator serves every style:

	long := func(w string) bool { return len(w) > 5 }
	n := wordfp.CountIf(words, long)                      // closure
	n = wordfp.CountIf(words, wordfp.Bind(hasLength, 5)) // bound free function

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package wordfp

// Fold is a left fold of xs, starting with zero.
func Fold[T, A any](xs []T, zero A, f func(A, T) A) A {
	acc := zero
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// CountIf returns the number of elements of xs satisfying pred.
func CountIf[T any](xs []T, pred func(T) bool) int {
	return Fold(xs, 0, func(n int, x T) int {
		if pred(x) {
			return n + 1
		}
		return n
	})
}

// Bind returns f with its second argument fixed to b.
func Bind[A, B, C any](f func(A, B) C, b B) func(A) C {
	return func(a A) C {
		return f(a, b)
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Not negates a predicate.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(x T) bool {
		return !pred(x)
	}
}
