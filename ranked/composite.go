// SPDX-License-Identifier: MIT
// Package ranked: composite ranked spaces (mixed-radix products).
//
// A Composite holds an ordered list of slots. Its universe is the Cartesian
// product of the slot universes; the LAST slot varies fastest, so global
// rank g and local ranks l₀…l_{m-1} relate as
//
//	g = Σ lᵢ · Π_{j>i} c_j,   cᵢ = slot i cardinality.
//
// Direct access decomposes g last-to-first with DivMod and unranks each slot
// on its own, so the cost depends on the number of slots, not on g.

package ranked

import (
	"iter"
	"math/big"

	"github.com/katalvlaran/rankspace/rankmath"
)

// Composite is the product of several ranked slots with elements []T, one
// entry per slot.
type Composite[T any] struct {
	slots []Ranked[T]
	cards []*big.Int // per-slot cardinalities, captured at construction
	card  *big.Int   // Π cards
}

var _ Ranked[[][]int] = (*Composite[[]int])(nil)

// Product composes slots into one ranked space. With no slots the product
// holds exactly one element, the empty tuple. A slot with cardinality 0
// empties the whole product.
// Complexity: O(m) multiplications at construction.
func Product[T any](slots ...Ranked[T]) *Composite[T] {
	c := &Composite[T]{
		slots: append([]Ranked[T](nil), slots...),
		cards: make([]*big.Int, len(slots)),
		card:  big.NewInt(1),
	}
	for i, s := range c.slots {
		c.cards[i] = s.Cardinality()
		c.card.Mul(c.card, c.cards[i])
	}

	return c
}

// Decompose splits global rank g into per-slot local ranks for the given
// slot cardinalities, processing the last slot first (least significant).
// Precondition: 0 ≤ g < Π cards and every card > 0.
// Complexity: O(m) divisions.
func Decompose(g *big.Int, cards []*big.Int) []*big.Int {
	local := make([]*big.Int, len(cards))
	rem := new(big.Int).Set(g)
	for i := len(cards) - 1; i >= 0; i-- {
		q, m := new(big.Int), new(big.Int)
		q.QuoRem(rem, cards[i], m)
		local[i] = m
		rem = q
	}

	return local
}

// Slots returns the number of slots.
func (c *Composite[T]) Slots() int {
	return len(c.slots)
}

// SlotCardinalities returns copies of the per-slot cardinalities.
func (c *Composite[T]) SlotCardinalities() []*big.Int {
	out := make([]*big.Int, len(c.cards))
	for i, v := range c.cards {
		out[i] = new(big.Int).Set(v)
	}

	return out
}

// Cardinality returns Π slot cardinalities.
func (c *Composite[T]) Cardinality() *big.Int {
	return new(big.Int).Set(c.card)
}

// All enumerates the product as an odometer: the last slot runs through its
// full sequence for every element of the slots before it. Each slot's
// sequence is restarted rather than materialized.
func (c *Composite[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		c.enumerate(rankmath.NewTable(), yield)
	}
}

// Stepped returns the product elements at start, start+step, …, each found
// by decomposing the global position and unranking every slot directly.
func (c *Composite[T]) Stepped(step, start *big.Int) (iter.Seq[[]T], error) {
	return stepped(c.card, step, start, c.unrank)
}

// At returns the product element at rank.
// Errors: ErrOutOfRange unless 0 ≤ rank < Cardinality().
func (c *Composite[T]) At(rank *big.Int) ([]T, error) {
	if err := checkRank(rank, c.card); err != nil {
		return nil, err
	}

	return c.unrank(rankmath.NewTable(), rank), nil
}

func (c *Composite[T]) unrank(t *rankmath.Table, rank *big.Int) []T {
	local := Decompose(rank, c.cards)
	out := make([]T, len(c.slots))
	for i, s := range c.slots {
		out[i] = s.unrank(t, local[i])
	}

	return out
}

// enumerate runs the odometer by nesting slot enumerations; the element held
// for slot i is reused while slots after it advance, so every emitted tuple
// carries copies.
func (c *Composite[T]) enumerate(t *rankmath.Table, yield func([]T) bool) bool {
	if c.card.Sign() == 0 {
		return true
	}
	cur := make([]T, len(c.slots))

	var rec func(i int) bool
	rec = func(i int) bool {
		if i == len(c.slots) {
			out := make([]T, len(cur))
			for j, e := range cur {
				out[j] = c.slots[j].copyOf(e)
			}
			return yield(out)
		}
		return c.slots[i].enumerate(t, func(e T) bool {
			cur[i] = e
			return rec(i + 1)
		})
	}

	return rec(0)
}

func (c *Composite[T]) copyOf(e []T) []T {
	out := make([]T, len(e))
	for j, v := range e {
		out[j] = c.slots[j].copyOf(v)
	}

	return out
}

// emptySelection is the size-1 domain holding one empty selection, used for
// slots declared over an empty source with a positive size.
func emptySelection[E any]() *Transformed[[]int, []E] {
	g, _ := Combinations(0, 0)
	m, _ := Map(g, []E(nil))

	return m
}

// CartesianProduct picks one element from every list, earlier lists varying
// slowest. An empty list contributes the single empty selection (and hence
// no element) instead of emptying the product.
func CartesianProduct[E any](lists ...[]E) *Transformed[[][]E, []E] {
	slots := make([]Ranked[[]E], len(lists))
	for i, list := range lists {
		if len(list) == 0 {
			slots[i] = emptySelection[E]()
			continue
		}
		g, _ := Combinations(len(list), 1) // n ≥ 1, r = 1: always valid
		m, _ := Map(g, list)
		slots[i] = m
	}

	return &Transformed[[][]E, []E]{
		inner: Product(slots...),
		fn:    flatten[E],
		clone: func(e []E) []E { return append([]E(nil), e...) },
	}
}

// flatten concatenates per-slot selections into one fresh slice.
func flatten[E any](parts [][]E) []E {
	size := 0
	for _, p := range parts {
		size += len(p)
	}
	out := make([]E, 0, size)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// ConstrainedProduct picks a unique combination of sizes[i] elements from
// sources[i] for every slot i. A slot over an empty source with a positive
// size is the single empty selection.
//
// Errors: ErrInvalidDomainSize when len(sizes) ≠ len(sources), a size is
// negative, or a size exceeds a non-empty source.
func ConstrainedProduct[E any](sizes []int, sources ...[]E) (*Composite[[]E], error) {
	if len(sizes) != len(sources) {
		return nil, rankedErrorf(MethodConstrainedProduct, ErrInvalidDomainSize, "%d sizes for %d sources", len(sizes), len(sources))
	}

	slots := make([]Ranked[[]E], len(sources))
	for i, src := range sources {
		if sizes[i] < 0 {
			return nil, rankedErrorf(MethodConstrainedProduct, ErrInvalidDomainSize, "slot %d: size must be ≥ 0, got %d", i, sizes[i])
		}
		if len(src) == 0 {
			slots[i] = emptySelection[E]()
			continue
		}
		g, err := Combinations(len(src), sizes[i])
		if err != nil {
			return nil, rankedErrorf(MethodConstrainedProduct, ErrInvalidDomainSize, "slot %d: size %d exceeds source of %d", i, sizes[i], len(src))
		}
		m, err := Map(g, src)
		if err != nil {
			return nil, err
		}
		slots[i] = m
	}

	return Product(slots...), nil
}
