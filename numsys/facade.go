// SPDX-License-Identifier: MIT
// Package numsys: checked rank/unrank facade.
//
// This file validates domains and inputs before delegating to the raw codecs:
//   - validateDomain: n ≥ 0, 0 ≤ r ≤ n.
//   - validateRank: 0 ≤ rank < card.
//   - ValidatePermutation / validatePartial / validateCombination: tuple shape.
//
// Design:
//   - No panics on user input; every failure wraps a sentinel from errors.go.
//   - Validation order: domain → tuple/rank → codec.
//   - Results never alias the caller's slices.

package numsys

import (
	"math/big"

	"github.com/katalvlaran/rankspace/rankmath"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// The empty slice is the (only) permutation of the empty domain.
//
// Errors: ErrOutOfRange for a length mismatch, an out-of-range value or a
// duplicate.
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return codecErrorf(MethodPermutationRank, ErrOutOfRange, "length %d, want %d", len(perm), n)
	}

	return validatePartial(MethodPermutationRank, perm, n)
}

// validatePartial checks that perm holds distinct values within [0, n) and
// is no longer than n.
func validatePartial(method string, perm []int, n int) error {
	if len(perm) > n {
		return codecErrorf(method, ErrOutOfRange, "length %d exceeds domain %d", len(perm), n)
	}
	seen := make([]bool, n)
	for i, v := range perm {
		// Out-of-range element violates the domain contract.
		if v < 0 || v >= n {
			return codecErrorf(method, ErrOutOfRange, "perm[%d]=%d outside [0,%d)", i, v, n)
		}
		// Duplicate violates the bijection contract.
		if seen[v] {
			return codecErrorf(method, ErrOutOfRange, "perm[%d]=%d repeated", i, v)
		}
		seen[v] = true
	}

	return nil
}

// validateCombination checks that idx is strictly increasing within [0, n).
func validateCombination(idx []int, n int) error {
	if len(idx) > n {
		return codecErrorf(MethodCombinationRank, ErrOutOfRange, "length %d exceeds domain %d", len(idx), n)
	}
	for i, v := range idx {
		if v < 0 || v >= n {
			return codecErrorf(MethodCombinationRank, ErrOutOfRange, "idx[%d]=%d outside [0,%d)", i, v, n)
		}
		if i > 0 && v <= idx[i-1] {
			return codecErrorf(MethodCombinationRank, ErrOutOfRange, "idx[%d]=%d not above idx[%d]=%d", i, v, i-1, idx[i-1])
		}
	}

	return nil
}

// validateDomain enforces n ≥ 0 and 0 ≤ r ≤ n.
func validateDomain(method string, n, r int) error {
	if n < 0 {
		return codecErrorf(method, ErrInvalidDomainSize, "n must be ≥ 0, got %d", n)
	}
	if r < 0 || r > n {
		return codecErrorf(method, ErrInvalidDomainSize, "size must be in [0,%d], got %d", n, r)
	}

	return nil
}

// validateRank enforces 0 ≤ rank < card.
func validateRank(method string, rank, card *big.Int) error {
	if rank == nil || rank.Sign() < 0 || rank.Cmp(card) >= 0 {
		return codecErrorf(method, ErrOutOfRange, "rank %v outside [0,%v)", rank, card)
	}

	return nil
}

// PermutationRank returns the factorial-base rank of perm over n = len(perm).
//
// Errors: ErrOutOfRange when perm is not a permutation of 0..len(perm)-1.
// Complexity: O(n²).
func PermutationRank(t *rankmath.Table, perm []int) (*big.Int, error) {
	if err := ValidatePermutation(perm, len(perm)); err != nil {
		return nil, err
	}

	return EncodePermutation(t, perm), nil
}

// PermutationUnrank returns the permutation of 0..n-1 at rank.
//
// Errors: ErrInvalidDomainSize for n < 0; ErrOutOfRange unless 0 ≤ rank < n!.
// Complexity: O(n²).
func PermutationUnrank(t *rankmath.Table, rank *big.Int, n int) ([]int, error) {
	if err := validateDomain(MethodPermutationUnrank, n, n); err != nil {
		return nil, err
	}
	card, _ := t.Factorial(n)
	if err := validateRank(MethodPermutationUnrank, rank, card); err != nil {
		return nil, err
	}

	return DecodePermutation(rank, n), nil
}

// CombinationRank returns the combinatorial-number-system rank of the
// increasing index tuple idx drawn from 0..n-1 (r = len(idx)).
//
// Errors: ErrInvalidDomainSize for n < 0; ErrOutOfRange for a tuple that is
// not strictly increasing within [0, n).
// Complexity: O(r).
func CombinationRank(t *rankmath.Table, n int, idx []int) (*big.Int, error) {
	if n < 0 {
		return nil, codecErrorf(MethodCombinationRank, ErrInvalidDomainSize, "n must be ≥ 0, got %d", n)
	}
	if err := validateCombination(idx, n); err != nil {
		return nil, err
	}

	return EncodeCombination(t, n, idx), nil
}

// CombinationUnrank returns the r-combination of 0..n-1 at rank.
//
// Errors: ErrInvalidDomainSize unless 0 ≤ r ≤ n; ErrOutOfRange unless
// 0 ≤ rank < C(n, r).
// Complexity: O(r·n).
func CombinationUnrank(t *rankmath.Table, rank *big.Int, n, r int) ([]int, error) {
	if err := validateDomain(MethodCombinationUnrank, n, r); err != nil {
		return nil, err
	}
	if err := validateRank(MethodCombinationUnrank, rank, t.NCr(n, r)); err != nil {
		return nil, err
	}

	return DecodeCombination(t, rank, n, r), nil
}

// KPermutationRank returns the falling-factorial-base rank of a partial
// permutation of k = len(perm) distinct values from 0..n-1.
//
// Errors: ErrInvalidDomainSize for n < 0; ErrOutOfRange for repeated or
// out-of-range values.
// Complexity: O(k²).
func KPermutationRank(t *rankmath.Table, n int, perm []int) (*big.Int, error) {
	if n < 0 {
		return nil, codecErrorf(MethodKPermutationRank, ErrInvalidDomainSize, "n must be ≥ 0, got %d", n)
	}
	if err := validatePartial(MethodKPermutationRank, perm, n); err != nil {
		return nil, err
	}

	return EncodeKPermutation(t, n, perm), nil
}

// KPermutationUnrank is the bounds-checked falling-factorial decoder.
//
// Errors: ErrInvalidDomainSize unless 0 ≤ k ≤ n; ErrOutOfRange when
// rank ≥ P(n, k) or rank < 0.
// Complexity: O(k·n).
func KPermutationUnrank(t *rankmath.Table, rank *big.Int, n, k int) ([]int, error) {
	if err := validateDomain(MethodKPermutationUnrank, n, k); err != nil {
		return nil, err
	}
	if err := validateRank(MethodKPermutationUnrank, rank, t.NPr(n, k)); err != nil {
		return nil, err
	}

	return DecodeKPermutation(t, rank, n, k), nil
}
