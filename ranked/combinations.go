// SPDX-License-Identifier: MIT
// Package ranked: combination families.
//
//   - Combinations:           increasing tuples; C(n, r), combinadic codec.
//   - RepetitiveCombinations: non-decreasing tuples; C(n+r-1, r).
//   - MultisetCombinations:   non-decreasing tuples under per-symbol caps.

package ranked

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/rankspace/numsys"
	"github.com/katalvlaran/rankspace/rankmath"
)

// Combinations returns the unique r-combinations of n positions as
// increasing index tuples in lexicographic order.
//
// Errors: ErrInvalidDomainSize for n < 0, r < 0 or r > n (n > 0).
func Combinations(n, r int) (*Generator, error) {
	if err := validateSource(MethodCombinations, n); err != nil {
		return nil, err
	}
	if err := validateSelection(MethodCombinations, n, r, n); err != nil {
		return nil, err
	}

	t := rankmath.NewTable()
	name := fmt.Sprintf("%s(n=%d, r=%d)", MethodCombinations, n, r)

	return newGenerator(name, n, t.NCr(n, r), combFamily{n: n, r: r}), nil
}

type combFamily struct{ n, r int }

func (f combFamily) first() []int { return ascending(f.r) }

func (f combFamily) next(cur []int) ([]int, bool) { return numsys.NextCombination(cur, f.n) }

func (f combFamily) unrank(t *rankmath.Table, rank *big.Int) []int {
	return numsys.DecodeCombination(t, rank, f.n, f.r)
}

// RepetitiveCombinations returns the size-r multisets over n positions as
// non-decreasing index tuples in lexicographic order; r may exceed n.
//
// Errors: ErrInvalidDomainSize for n < 0 or r < 0.
func RepetitiveCombinations(n, r int) (*Generator, error) {
	if err := validateSource(MethodRepetitiveCombinations, n); err != nil {
		return nil, err
	}
	if r < 0 {
		return nil, rankedErrorf(MethodRepetitiveCombinations, ErrInvalidDomainSize, "selection size must be ≥ 0, got %d", r)
	}

	t := rankmath.NewTable()
	name := fmt.Sprintf("%s(n=%d, r=%d)", MethodRepetitiveCombinations, n, r)

	return newGenerator(name, n, t.NCrRepetitive(n, r), multichooseFamily{n: n, r: r}), nil
}

type multichooseFamily struct{ n, r int }

func (f multichooseFamily) first() []int { return make([]int, f.r) }

func (f multichooseFamily) next(cur []int) ([]int, bool) { return numsys.NextMultichoose(cur, f.n) }

// unrank maps the r-combination c of n+r-1 positions onto the multiset
// c[i]-i; the shift preserves lexicographic order.
func (f multichooseFamily) unrank(t *rankmath.Table, rank *big.Int) []int {
	out := numsys.DecodeCombination(t, rank, f.n+f.r-1, f.r)
	for i := range out {
		out[i] -= i
	}

	return out
}

// MultisetCombinations returns the size-r sub-multisets in which position s
// appears at most freqs[s] times, as non-decreasing index tuples in
// lexicographic order.
//
// Errors: ErrInvalidDomainSize for n < 0, len(freqs) ≠ n, a negative
// frequency, r < 0 or r > Σ freqs (n > 0).
func MultisetCombinations(n int, freqs []int, r int) (*Generator, error) {
	if err := validateSource(MethodMultisetCombinations, n); err != nil {
		return nil, err
	}
	total, err := validateFrequencies(MethodMultisetCombinations, n, freqs)
	if err != nil {
		return nil, err
	}
	if err = validateSelection(MethodMultisetCombinations, n, r, total); err != nil {
		return nil, err
	}

	caps := append([]int(nil), freqs...)
	card, err := rankmath.MultisetCombinationsCount(r, caps...)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s(n=%d, freqs=%v, r=%d)", MethodMultisetCombinations, n, caps, r)

	return newGenerator(name, n, card, multisetCombFamily{caps: caps, r: r}), nil
}

type multisetCombFamily struct {
	caps []int
	r    int
}

// first takes each symbol as often as allowed, smallest first.
func (f multisetCombFamily) first() []int {
	out := make([]int, 0, f.r)
	for s := 0; len(out) < f.r; s++ {
		for c := 0; c < f.caps[s] && len(out) < f.r; c++ {
			out = append(out, s)
		}
	}

	return out
}

func (f multisetCombFamily) next(cur []int) ([]int, bool) {
	return numsys.NextMultisetCombination(cur, f.caps)
}

// unrank chooses, position by position, the smallest symbol ≥ the previous
// one whose block of completions (drawn from that symbol onwards) still
// contains the remaining rank.
func (f multisetCombFamily) unrank(_ *rankmath.Table, rank *big.Int) []int {
	left := append([]int(nil), f.caps...)
	rem := new(big.Int).Set(rank)
	out := make([]int, f.r)
	lo := 0
	for p := 0; p < f.r; p++ {
		for s := lo; s < len(left); s++ {
			if left[s] == 0 {
				continue
			}
			left[s]--
			block, _ := rankmath.MultisetCombinationsCount(f.r-p-1, left[s:]...)
			if rem.Cmp(block) < 0 {
				out[p], lo = s, s
				break
			}
			rem.Sub(rem, block)
			left[s]++
		}
	}

	return out
}
