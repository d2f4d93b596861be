// SPDX-License-Identifier: MIT
// Package rankmath: derived counts built on the coefficient table.
//
// Provided helpers:
//   - Power: binary exponentiation over big.Int.
//   - TotalSubsetsInRange: Σ C(n, i) for a clipped size range.
//   - SmallestNForNCrAbove / SmallestNForFactorialAbove: upward scans.
//   - MultisetCombinationsCount: cumulative DP over per-symbol caps.
//   - MultisetPermutationsCount: ordered counterpart of the above.
//   - ToInt: bounded conversion of an index back into an int.

package rankmath

import (
	"math"
	"math/big"
)

// Power returns base^exp by binary exponentiation.
//
// Errors: ErrInvalidDomainSize when exp < 0.
// Complexity: O(log exp) multiplications.
func Power(base *big.Int, exp int) (*big.Int, error) {
	if exp < 0 {
		return nil, arithErrorf(OpPower, ErrInvalidDomainSize, "exponent must be ≥ 0, got %d", exp)
	}

	result := big.NewInt(1)
	b := new(big.Int).Set(base)
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result.Mul(result, b)
		}
		if e > 1 {
			b.Mul(b, b)
		}
	}

	return result, nil
}

// TotalSubsetsInRange returns Σ C(n, i) for i in [from, to], with the range
// clipped to [0, n]. An empty (or inverted) range yields 0. The full range
// [0, n] is answered with a single shift (2ⁿ).
//
// Complexity: O(to-from) table lookups, O(1) for the full range.
func (t *Table) TotalSubsetsInRange(from, to, n int) *big.Int {
	if n < 0 {
		return big.NewInt(0)
	}
	if from < 0 {
		from = 0
	}
	if to > n {
		to = n
	}
	if from > to {
		return big.NewInt(0)
	}
	if from == 0 && to == n {
		return new(big.Int).Lsh(bigOne, uint(n))
	}

	sum := new(big.Int)
	for i := from; i <= to; i++ {
		sum.Add(sum, t.binom(n, i))
	}

	return sum
}

// SmallestNForNCrAbove returns the smallest n ≥ r with C(n, r) > threshold.
//
// The scan walks n upward from r, advancing C(n, r) multiplicatively
// (C(n+1, r) = C(n, r)·(n+1)/(n+1-r)); each step is exact.
//
// Errors: ErrInvalidDomainSize when r < 1 (C(n,0) never exceeds 1) or the
// threshold is negative.
// Complexity: O(n - r) big-integer multiplications.
func SmallestNForNCrAbove(r int, threshold *big.Int) (int, error) {
	if r < 1 {
		return 0, arithErrorf(OpThresholdNCr, ErrInvalidDomainSize, "r must be ≥ 1, got %d", r)
	}
	if threshold.Sign() < 0 {
		return r, nil
	}

	n := r
	c := big.NewInt(1) // C(r, r)
	for c.Cmp(threshold) <= 0 {
		c.Mul(c, big.NewInt(int64(n+1)))
		c.Quo(c, big.NewInt(int64(n+1-r)))
		n++
	}

	return n, nil
}

// SmallestNForFactorialAbove returns the smallest n ≥ 0 with n! > threshold.
// A negative threshold yields 0.
// Complexity: O(n) multiplications.
func SmallestNForFactorialAbove(threshold *big.Int) int {
	n := 0
	f := big.NewInt(1)
	for f.Cmp(threshold) <= 0 {
		n++
		f.Mul(f, big.NewInt(int64(n)))
	}

	return n
}

// MultisetCombinationsCount returns the number of ways to choose exactly k
// items from a multiset whose i-th symbol may be used at most freqs[i] times:
// the coefficient of xᵏ in Π (1 + x + … + x^freqs[i]).
//
// Implementation: a single row dp[0..k] is folded symbol by symbol. For a cap
// f the new row is dp'[j] = Σ_{t=0..min(f,j)} dp[j-t], evaluated as a
// difference of prefix sums so each symbol costs O(k).
//
// Errors: ErrInvalidDomainSize for k < 0 or any negative frequency.
// Complexity: O(len(freqs)·k) big-integer additions.
func MultisetCombinationsCount(k int, freqs ...int) (*big.Int, error) {
	if k < 0 {
		return nil, arithErrorf(OpMultisetComb, ErrInvalidDomainSize, "k must be ≥ 0, got %d", k)
	}
	for i, f := range freqs {
		if f < 0 {
			return nil, arithErrorf(OpMultisetComb, ErrInvalidDomainSize, "frequency[%d] must be ≥ 0, got %d", i, f)
		}
	}

	dp := make([]*big.Int, k+1)
	for j := range dp {
		dp[j] = new(big.Int)
	}
	dp[0].SetInt64(1)

	prefix := make([]*big.Int, k+2) // prefix[j] = Σ dp[0..j-1]
	for j := range prefix {
		prefix[j] = new(big.Int)
	}

	for _, f := range freqs {
		for j := 0; j <= k; j++ {
			prefix[j+1].Add(prefix[j], dp[j])
		}
		for j := 0; j <= k; j++ {
			lo := j - f
			if lo < 0 {
				lo = 0
			}
			dp[j].Sub(prefix[j+1], prefix[lo])
		}
	}

	return dp[k], nil
}

// MultisetPermutationsCount returns the number of length-k sequences over a
// multiset whose i-th symbol may appear at most freqs[i] times.
//
// Recurrence over symbols m and lengths L:
//
//	W_0(0) = 1, W_0(L>0) = 0
//	W_m(L) = Σ_{j=0..min(freqs[m], L)} W_{m-1}(L-j) · C(L, j)
//
// choosing which j of the L positions receive symbol m.
//
// Errors: ErrInvalidDomainSize for k < 0 or any negative frequency.
// Complexity: O(len(freqs)·k·max(freqs)) big-integer multiplications.
func (t *Table) MultisetPermutationsCount(k int, freqs ...int) (*big.Int, error) {
	if k < 0 {
		return nil, arithErrorf(OpMultisetPerm, ErrInvalidDomainSize, "k must be ≥ 0, got %d", k)
	}
	for i, f := range freqs {
		if f < 0 {
			return nil, arithErrorf(OpMultisetPerm, ErrInvalidDomainSize, "frequency[%d] must be ≥ 0, got %d", i, f)
		}
	}

	w := make([]*big.Int, k+1)
	for l := range w {
		w[l] = new(big.Int)
	}
	w[0].SetInt64(1)

	term := new(big.Int)
	for _, f := range freqs {
		next := make([]*big.Int, k+1)
		for l := 0; l <= k; l++ {
			acc := new(big.Int)
			for j := 0; j <= f && j <= l; j++ {
				if w[l-j].Sign() == 0 {
					continue
				}
				term.Mul(w[l-j], t.binom(l, j))
				acc.Add(acc, term)
			}
			next[l] = acc
		}
		w = next
	}

	return w[k], nil
}

// ToInt converts a non-negative exact integer into an int.
//
// Errors: ErrIndexOverflow when x is nil, negative or larger than math.MaxInt.
// Complexity: O(1).
func ToInt(x *big.Int) (int, error) {
	if x == nil || x.Sign() < 0 || !x.IsInt64() || x.Int64() > math.MaxInt {
		return 0, arithErrorf(OpToInt, ErrIndexOverflow, "value %v", x)
	}

	return int(x.Int64()), nil
}
