// SPDX-License-Identifier: MIT
// Package numsys: factorial-base codec (permutations of n).

package numsys

import (
	"math/big"

	"github.com/katalvlaran/rankspace/rankmath"
)

// FactoradicDigits writes rank in the factorial base with n digits,
// least-significant first: digit i is rank's remainder modulo i+1 after the
// lower digits have been divided out, so d[i] ∈ [0, i].
//
// Precondition: 0 ≤ rank < n! (higher bits are silently discarded).
// Complexity: O(n) big-integer divisions by small moduli.
func FactoradicDigits(rank *big.Int, n int) Digits {
	d := make(Digits, n)
	q := new(big.Int).Set(rank)
	m := new(big.Int)
	mod := new(big.Int)
	for i := 0; i < n; i++ {
		mod.SetInt64(int64(i + 1))
		q.QuoRem(q, mod, m)
		d[i] = int(m.Int64())
	}

	return d
}

// FromFactoradic folds factorial-base digits back into a rank.
// Complexity: O(n) multiplications (Horner from the most significant digit).
func FromFactoradic(d Digits) *big.Int {
	rank := new(big.Int)
	radix := new(big.Int)
	for i := len(d) - 1; i >= 0; i-- {
		// rank = rank·(i+1) + d[i]
		radix.SetInt64(int64(i + 1))
		rank.Mul(rank, radix)
		rank.Add(rank, big.NewInt(int64(d[i])))
	}

	return rank
}

// DigitsToPermutation turns factorial-base digits into an index tuple: the
// most significant digit picks the d-th smallest value of the pool 0..n-1,
// which is then removed, and so on down to the least significant digit.
// Complexity: O(n²) slice removals.
func DigitsToPermutation(d Digits) []int {
	n := len(d)
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	perm := make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		j := d[i]
		perm = append(perm, pool[j])
		pool = append(pool[:j], pool[j+1:]...)
	}

	return perm
}

// PermutationToDigits is the inverse of DigitsToPermutation: for each
// position p (scanning right to left) the digit is the number of later
// positions holding a smaller value.
// Complexity: O(n²).
func PermutationToDigits(perm []int) Digits {
	n := len(perm)
	d := make(Digits, n)
	for p := n - 1; p >= 0; p-- {
		smaller := 0
		for q := p + 1; q < n; q++ {
			if perm[q] < perm[p] {
				smaller++
			}
		}
		// position p carries place value (n-1-p)!
		d[n-1-p] = smaller
	}

	return d
}

// DecodePermutation returns the permutation of 0..n-1 with the given rank in
// lexicographic order. n ∈ {0, 1} always yields the single trivial permutation.
//
// Precondition: 0 ≤ rank < n!.
// Complexity: O(n²).
func DecodePermutation(rank *big.Int, n int) []int {
	return DigitsToPermutation(FactoradicDigits(rank, n))
}

// EncodePermutation returns the lexicographic rank of perm, a permutation of
// 0..len(perm)-1, weighting each right-to-left count by ascending factorial
// place values taken from t.
//
// Precondition: perm is a permutation (see PermutationRank for the checked form).
// Complexity: O(n²) comparisons plus O(n) multiplications.
func EncodePermutation(t *rankmath.Table, perm []int) *big.Int {
	d := PermutationToDigits(perm)
	rank := new(big.Int)
	term := new(big.Int)
	for i, digit := range d {
		if digit == 0 {
			continue
		}
		place, _ := t.Factorial(i) // i ≥ 0 by construction
		term.Mul(place, big.NewInt(int64(digit)))
		rank.Add(rank, term)
	}

	return rank
}
