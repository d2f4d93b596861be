// SPDX-License-Identifier: MIT
// Package numsys: combinatorial number system (r-combinations of n).

package numsys

import (
	"math/big"

	"github.com/katalvlaran/rankspace/rankmath"
)

// CombinadicDigits returns the strictly decreasing coordinates c₀ > c₁ > … of
// the combinadic value N = C(n,r) - 1 - rank. For degree d = r..1 the
// coordinate is the largest m with C(m, d) ≤ the remaining value; that
// binomial is then subtracted.
//
// Precondition: 0 ≤ rank < C(n, r), 0 ≤ r ≤ n.
// Complexity: O(r·n) big-integer operations (upward threshold scans).
func CombinadicDigits(t *rankmath.Table, rank *big.Int, n, r int) Digits {
	rem := t.NCr(n, r)
	rem.Sub(rem, bigOne)
	rem.Sub(rem, rank)

	coords := make(Digits, 0, r)
	for degree := r; degree >= 1; degree-- {
		above, _ := rankmath.SmallestNForNCrAbove(degree, rem) // degree ≥ 1
		m := above - 1
		coords = append(coords, m)
		rem.Sub(rem, t.NCr(m, degree))
	}

	return coords
}

// CombinadicToCombination complements decreasing coordinates back into the
// increasing index tuple idx[i] = n-1-c[i].
func CombinadicToCombination(c Digits, n int) []int {
	idx := make([]int, len(c))
	for i, coord := range c {
		idx[i] = n - 1 - coord
	}

	return idx
}

// DecodeCombination returns the r-combination of 0..n-1 (increasing index
// tuple) at the given lexicographic rank.
//
// Precondition: 0 ≤ rank < C(n, r).
// Complexity: O(r·n).
func DecodeCombination(t *rankmath.Table, rank *big.Int, n, r int) []int {
	return CombinadicToCombination(CombinadicDigits(t, rank, n, r), n)
}

// EncodeCombination returns the lexicographic rank of the increasing index
// tuple idx chosen from 0..n-1: the complemented coordinates are summed as
// Σ C(n-1-idx[i], r-i) and subtracted from C(n,r)-1.
//
// Precondition: idx strictly increasing within [0, n).
// Complexity: O(r) table lookups.
func EncodeCombination(t *rankmath.Table, n int, idx []int) *big.Int {
	r := len(idx)
	sum := new(big.Int)
	for i, v := range idx {
		sum.Add(sum, t.NCr(n-1-v, r-i))
	}

	rank := t.NCr(n, r)
	rank.Sub(rank, bigOne)

	return rank.Sub(rank, sum)
}

var bigOne = big.NewInt(1)
