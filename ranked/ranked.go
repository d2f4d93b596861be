// SPDX-License-Identifier: MIT
// Package ranked: the Ranked contract and the index-tuple Generator.
//
// Design:
//   • Ranked[T] is sealed: besides the public operations it carries three
//     unexported hooks (unrank, enumerate, copyOf) that let composites drive
//     their slots with one shared rankmath.Table and without re-validating.
//   • Generator is the single concrete type behind every family. Families are
//     small strategy values (family interface) chosen at construction.
//   • Cardinality is computed eagerly; cursors live only inside the closures
//     returned by All and Stepped.

package ranked

import (
	"fmt"
	"iter"
	"math/big"

	"github.com/katalvlaran/rankspace/rankmath"
)

// Ranked is a finite, ordered combinatorial universe with direct access.
//
// Invariants:
//   - All() yields exactly Cardinality() elements, in lexicographic order.
//   - Stepped(1, 0) yields the same elements as All(), in the same order.
//   - Ranging over the same sequence twice yields identical elements.
type Ranked[T any] interface {
	// Cardinality returns a fresh copy of the number of elements.
	Cardinality() *big.Int
	// All returns the full, restartable sequence.
	All() iter.Seq[T]
	// Stepped returns the elements at start, start+step, … (0-based).
	Stepped(step, start *big.Int) (iter.Seq[T], error)
	// At returns the element at rank.
	At(rank *big.Int) (T, error)

	unrank(t *rankmath.Table, rank *big.Int) T
	enumerate(t *rankmath.Table, yield func(T) bool) bool
	copyOf(e T) T
}

// SteppedInt is Stepped with int64 arguments.
func SteppedInt[T any](r Ranked[T], step, start int64) (iter.Seq[T], error) {
	return r.Stepped(big.NewInt(step), big.NewInt(start))
}

// stepped builds the shared every-mth sequence: positions start, start+step,
// … below card, each produced by unranking the position directly.
//
// Errors: ErrInvalidStep for step ≤ 0 (or nil); ErrOutOfRange for a negative
// (or nil) start. A start at or beyond card yields an empty sequence.
func stepped[T any](card, step, start *big.Int, unrank func(*rankmath.Table, *big.Int) T) (iter.Seq[T], error) {
	if step == nil || step.Sign() <= 0 {
		return nil, rankedErrorf(MethodStepped, ErrInvalidStep, "step %v", step)
	}
	if start == nil || start.Sign() < 0 {
		return nil, rankedErrorf(MethodStepped, ErrOutOfRange, "start %v", start)
	}
	st := new(big.Int).Set(step)
	s0 := new(big.Int).Set(start)

	return func(yield func(T) bool) {
		t := rankmath.NewTable() // one table per traversal
		pos := new(big.Int).Set(s0)
		for pos.Cmp(card) < 0 {
			if !yield(unrank(t, pos)) {
				return
			}
			pos.Add(pos, st)
		}
	}, nil
}

// checkRank enforces 0 ≤ rank < card for At.
func checkRank(rank, card *big.Int) error {
	if rank == nil || rank.Sign() < 0 || rank.Cmp(card) >= 0 {
		return rankedErrorf(MethodAt, ErrOutOfRange, "rank %v outside [0,%v)", rank, card)
	}

	return nil
}

// family is the per-family strategy behind a Generator.
// first/next walk the universe with successor functions; unrank decodes a
// rank already known to be in range.
type family interface {
	first() []int
	next(cur []int) ([]int, bool)
	unrank(t *rankmath.Table, rank *big.Int) []int
}

// Generator is an immutable ranked universe of index tuples over a source of
// size n. Construct it with one of the family constructors.
type Generator struct {
	name string   // human-readable description, e.g. "Combinations(n=5, r=2)"
	n    int      // source size
	card *big.Int // eager cardinality, never mutated
	f    family   // per-family strategy
}

var _ Ranked[[]int] = (*Generator)(nil)

// newGenerator wires a validated family into a Generator.
func newGenerator(name string, n int, card *big.Int, f family) *Generator {
	return &Generator{name: name, n: n, card: card, f: f}
}

// String describes the generator and its domain.
func (g *Generator) String() string {
	return g.name
}

// Size returns the source size n the index tuples refer to.
func (g *Generator) Size() int {
	return g.n
}

// Cardinality returns the number of index tuples.
// Complexity: O(1) (copy of the eager value).
func (g *Generator) Cardinality() *big.Int {
	return new(big.Int).Set(g.card)
}

// All returns every index tuple in lexicographic order, walking the
// universe with the family's successor function.
// Complexity: O(cost of one successor) per element.
func (g *Generator) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		g.enumerate(rankmath.NewTable(), yield)
	}
}

// Stepped returns the tuples at start, start+step, …, each decoded directly
// from its rank.
func (g *Generator) Stepped(step, start *big.Int) (iter.Seq[[]int], error) {
	return stepped(g.card, step, start, g.unrank)
}

// At returns the tuple at rank.
// Errors: ErrOutOfRange unless 0 ≤ rank < Cardinality().
func (g *Generator) At(rank *big.Int) ([]int, error) {
	if err := checkRank(rank, g.card); err != nil {
		return nil, fmt.Errorf("%s: %w", g.name, err)
	}

	return g.unrank(rankmath.NewTable(), rank), nil
}

func (g *Generator) unrank(t *rankmath.Table, rank *big.Int) []int {
	return g.f.unrank(t, rank)
}

// enumerate yields copies so consumers never alias the cursor.
func (g *Generator) enumerate(_ *rankmath.Table, yield func([]int) bool) bool {
	if g.card.Sign() == 0 {
		return true
	}
	for cur, ok := g.f.first(), true; ok; cur, ok = g.f.next(cur) {
		if !yield(g.copyOf(cur)) {
			return false
		}
	}

	return true
}

func (g *Generator) copyOf(e []int) []int {
	out := make([]int, len(e))
	copy(out, e)

	return out
}
