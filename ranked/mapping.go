// SPDX-License-Identifier: MIT
// Package ranked: element mapping.
//
// Map turns index tuples into element slices over a caller-supplied source;
// Transform is the general projection it is built on. Neither changes the
// order or the cardinality of the underlying universe.

package ranked

import (
	"iter"
	"math/big"
	"slices"

	"github.com/katalvlaran/rankspace/rankmath"
)

// Transformed is a ranked universe whose elements are fn applied to the
// elements of an inner universe.
type Transformed[S, T any] struct {
	inner Ranked[S]
	fn    func(S) T
	clone func(T) T // deep-enough copy for composites; identity when nil
}

var _ Ranked[[]string] = (*Transformed[[]int, []string])(nil)

// Transform projects every element of r through fn. fn must be pure and
// return values that do not alias its input; its results are treated as
// immutable by composites.
func Transform[S, T any](r Ranked[S], fn func(S) T) *Transformed[S, T] {
	return &Transformed[S, T]{inner: r, fn: fn}
}

// Map returns the universe of g with every index tuple replaced by the
// corresponding elements of source. The source is copied; positions, not
// values, identify elements, so duplicate values are allowed.
//
// Errors: ErrInvalidDomainSize when len(source) ≠ g.Size().
func Map[E any](g *Generator, source []E) (*Transformed[[]int, []E], error) {
	if len(source) != g.Size() {
		return nil, rankedErrorf(MethodMap, ErrInvalidDomainSize, "source has %d elements, %s expects %d", len(source), g, g.Size())
	}
	src := slices.Clone(source)

	return &Transformed[[]int, []E]{
		inner: g,
		fn:    func(idx []int) []E { return pick(src, idx) },
		clone: func(e []E) []E { return slices.Clone(e) },
	}, nil
}

// pick returns source[idx[0]], source[idx[1]], … as a fresh slice.
func pick[E any](source []E, idx []int) []E {
	out := make([]E, len(idx))
	for i, j := range idx {
		out[i] = source[j]
	}

	return out
}

// Cardinality returns the inner cardinality.
func (m *Transformed[S, T]) Cardinality() *big.Int {
	return m.inner.Cardinality()
}

// All returns the mapped full sequence.
func (m *Transformed[S, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		m.enumerate(rankmath.NewTable(), yield)
	}
}

// Stepped returns the mapped stepped sequence.
func (m *Transformed[S, T]) Stepped(step, start *big.Int) (iter.Seq[T], error) {
	return stepped(m.inner.Cardinality(), step, start, m.unrank)
}

// At returns the mapped element at rank.
func (m *Transformed[S, T]) At(rank *big.Int) (T, error) {
	e, err := m.inner.At(rank)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.fn(e), nil
}

func (m *Transformed[S, T]) unrank(t *rankmath.Table, rank *big.Int) T {
	return m.fn(m.inner.unrank(t, rank))
}

func (m *Transformed[S, T]) enumerate(t *rankmath.Table, yield func(T) bool) bool {
	return m.inner.enumerate(t, func(e S) bool {
		return yield(m.fn(e))
	})
}

func (m *Transformed[S, T]) copyOf(e T) T {
	if m.clone == nil {
		return e
	}

	return m.clone(e)
}
