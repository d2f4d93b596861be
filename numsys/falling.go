// SPDX-License-Identifier: MIT
// Package numsys: falling-factorial base (k-out-of-n partial permutations).

package numsys

import (
	"math/big"

	"github.com/katalvlaran/rankspace/rankmath"
)

// FallingDigits returns the k falling-factorial digits of rank, most
// significant first. Digit i ranges over [0, n-i) and carries the place
// value P(n-1-i, k-1-i).
//
// Precondition: 0 ≤ rank < P(n, k).
// Complexity: O(k) big-integer divisions.
func FallingDigits(t *rankmath.Table, rank *big.Int, n, k int) Digits {
	d := make(Digits, k)
	q, m := new(big.Int), new(big.Int)
	rem := new(big.Int).Set(rank)
	for i := 0; i < k; i++ {
		q.QuoRem(rem, t.NPr(n-1-i, k-1-i), m)
		d[i] = int(q.Int64())
		rem.Set(m)
	}

	return d
}

// DecodeKPermutation returns the k-out-of-n partial permutation at the
// given lexicographic rank, selecting each digit's entry from the shrinking
// pool 0..n-1 and stopping after k extractions.
//
// Unchecked: used internally once 0 ≤ rank < P(n, k) is guaranteed. See
// KPermutationUnrank for the bounds-checked variant.
// Complexity: O(k·n).
func DecodeKPermutation(t *rankmath.Table, rank *big.Int, n, k int) []int {
	d := FallingDigits(t, rank, n, k)

	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	perm := make([]int, k)
	for i, j := range d {
		perm[i] = pool[j]
		pool = append(pool[:j], pool[j+1:]...)
	}

	return perm
}

// EncodeKPermutation returns the lexicographic rank of a partial permutation
// of k distinct values from 0..n-1. The digit of position i is the value's
// index within the pool that remains after removing the earlier picks, i.e.
// perm[i] minus the number of earlier positions holding a smaller value.
// Digits are weighted right to left by ascending falling factorials.
//
// Precondition: values distinct and within [0, n), len(perm) ≤ n.
// Complexity: O(k²) comparisons plus O(k) multiplications.
func EncodeKPermutation(t *rankmath.Table, n int, perm []int) *big.Int {
	k := len(perm)
	rank := new(big.Int)
	term := new(big.Int)
	for i := k - 1; i >= 0; i-- {
		digit := perm[i]
		for j := 0; j < i; j++ {
			if perm[j] < perm[i] {
				digit--
			}
		}
		if digit == 0 {
			continue
		}
		term.Mul(t.NPr(n-1-i, k-1-i), big.NewInt(int64(digit)))
		rank.Add(rank, term)
	}

	return rank
}
