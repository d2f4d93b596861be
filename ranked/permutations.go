// SPDX-License-Identifier: MIT
// Package ranked: permutation families.
//
//   - Permutations:           distinct positions, ordered; P(n, k).
//   - RepetitivePermutations: any position at every slot; nʳ.
//   - MultisetPermutations:   position s used at most freqs[s] times.

package ranked

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/rankspace/numsys"
	"github.com/katalvlaran/rankspace/rankmath"
)

// Permutations returns the unique k-permutations of n positions in
// lexicographic order. k defaults to n (full permutations, factorial base);
// WithSize(k) selects partial permutations (falling-factorial base).
//
// Errors: ErrInvalidDomainSize for n < 0, k < 0 or k > n (n > 0).
func Permutations(n int, opts ...Option) (*Generator, error) {
	cfg := newGenConfig(opts...)
	k := n
	if cfg.sizeSet {
		k = cfg.size
	}
	if err := validateSource(MethodPermutations, n); err != nil {
		return nil, err
	}
	if err := validateSelection(MethodPermutations, n, k, n); err != nil {
		return nil, err
	}

	t := rankmath.NewTable()
	name := fmt.Sprintf("%s(n=%d, k=%d)", MethodPermutations, n, k)

	return newGenerator(name, n, t.NPr(n, k), permFamily{n: n, k: k}), nil
}

type permFamily struct{ n, k int }

func (f permFamily) first() []int { return ascending(f.k) }

func (f permFamily) next(cur []int) ([]int, bool) {
	if f.k == f.n {
		return numsys.NextPermutation(cur)
	}

	return numsys.NextKPermutation(cur, f.n)
}

func (f permFamily) unrank(t *rankmath.Table, rank *big.Int) []int {
	if f.k == f.n {
		return numsys.DecodePermutation(rank, f.n)
	}

	return numsys.DecodeKPermutation(t, rank, f.n, f.k)
}

// RepetitivePermutations returns all length-r words over n positions
// (permutations with repetition) in lexicographic order; r may exceed n.
//
// Errors: ErrInvalidDomainSize for n < 0 or r < 0.
func RepetitivePermutations(n, r int) (*Generator, error) {
	if err := validateSource(MethodRepetitivePermutations, n); err != nil {
		return nil, err
	}
	if r < 0 {
		return nil, rankedErrorf(MethodRepetitivePermutations, ErrInvalidDomainSize, "selection size must be ≥ 0, got %d", r)
	}

	card, err := rankmath.Power(big.NewInt(int64(n)), r)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s(n=%d, r=%d)", MethodRepetitivePermutations, n, r)

	return newGenerator(name, n, card, tupleFamily{n: n, r: r}), nil
}

type tupleFamily struct{ n, r int }

func (f tupleFamily) first() []int { return make([]int, f.r) }

func (f tupleFamily) next(cur []int) ([]int, bool) { return numsys.NextTuple(cur, f.n) }

// unrank writes rank in base n, most significant digit first.
func (f tupleFamily) unrank(_ *rankmath.Table, rank *big.Int) []int {
	out := make([]int, f.r)
	q := new(big.Int).Set(rank)
	m := new(big.Int)
	base := big.NewInt(int64(f.n))
	for i := f.r - 1; i >= 0; i-- {
		q.QuoRem(q, base, m)
		out[i] = int(m.Int64())
	}

	return out
}

// MultisetPermutations returns the length-k words in which position s
// appears at most freqs[s] times, in lexicographic order. k defaults to
// Σ freqs (permutations of the whole multiset); WithSize(k) shortens the
// words.
//
// Errors: ErrInvalidDomainSize for n < 0, len(freqs) ≠ n, a negative
// frequency, k < 0 or k > Σ freqs (n > 0).
func MultisetPermutations(n int, freqs []int, opts ...Option) (*Generator, error) {
	if err := validateSource(MethodMultisetPermutations, n); err != nil {
		return nil, err
	}
	total, err := validateFrequencies(MethodMultisetPermutations, n, freqs)
	if err != nil {
		return nil, err
	}
	cfg := newGenConfig(opts...)
	k := total
	if cfg.sizeSet {
		k = cfg.size
	}
	if err = validateSelection(MethodMultisetPermutations, n, k, total); err != nil {
		return nil, err
	}

	caps := append([]int(nil), freqs...)
	t := rankmath.NewTable()
	card, err := t.MultisetPermutationsCount(k, caps...)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s(n=%d, freqs=%v, k=%d)", MethodMultisetPermutations, n, caps, k)

	return newGenerator(name, n, card, multisetPermFamily{caps: caps, k: k}), nil
}

type multisetPermFamily struct {
	caps []int
	k    int
}

// first fills the word with the smallest symbols still available.
func (f multisetPermFamily) first() []int {
	out := make([]int, f.k)
	sym, used := 0, 0
	for i := range out {
		for used >= f.caps[sym] {
			sym, used = sym+1, 0
		}
		out[i] = sym
		used++
	}

	return out
}

func (f multisetPermFamily) next(cur []int) ([]int, bool) {
	return numsys.NextMultisetPermutation(cur, f.caps)
}

// unrank picks, position by position, the smallest symbol whose block of
// completions still contains the remaining rank.
func (f multisetPermFamily) unrank(t *rankmath.Table, rank *big.Int) []int {
	left := append([]int(nil), f.caps...)
	rem := new(big.Int).Set(rank)
	out := make([]int, f.k)
	for p := 0; p < f.k; p++ {
		for s := range left {
			if left[s] == 0 {
				continue
			}
			left[s]--
			block, _ := t.MultisetPermutationsCount(f.k-p-1, left...)
			if rem.Cmp(block) < 0 {
				out[p] = s
				break
			}
			rem.Sub(rem, block)
			left[s]++
		}
	}

	return out
}

// ascending returns [0, 1, …, k-1].
func ascending(k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = i
	}

	return out
}
