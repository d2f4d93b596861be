// SPDX-License-Identifier: MIT
// Package rankmath: memoized coefficient table.
//
// Design:
//   • Table owns three caches: a factorial prefix slice and two maps keyed by
//     (n, r) for binomial and falling-factorial coefficients.
//   • Cached *big.Int values are shared internally and never mutated after
//     insertion; every exported method hands out a copy.
//   • No eviction. Scope a Table to one computation (see doc.go).

package rankmath

import "math/big"

// Operation names used as error prefixes.
const (
	OpFactorial    = "Factorial"
	OpPower        = "Power"
	OpMultisetComb = "MultisetCombinationsCount"
	OpMultisetPerm = "MultisetPermutationsCount"
	OpToInt        = "ToInt"
	OpThresholdNCr = "SmallestNForNCrAbove"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// coef is the memo key for two-argument coefficients.
type coef struct {
	n, r int
}

// Table memoizes the coefficients consumed by codecs and generators.
// The zero value is not usable; call NewTable.
//
// A Table is not safe for concurrent use.
type Table struct {
	fact []*big.Int        // fact[i] = i!, grown monotonically
	ncr  map[coef]*big.Int // C(n, r) with r already reduced to min(r, n-r)
	npr  map[coef]*big.Int // n·(n-1)···(n-r+1)
}

// NewTable returns an empty memo table seeded with 0! = 1.
// Complexity: O(1).
func NewTable() *Table {
	return &Table{
		fact: []*big.Int{big.NewInt(1)},
		ncr:  make(map[coef]*big.Int),
		npr:  make(map[coef]*big.Int),
	}
}

// Factorial returns n!.
// The cached prefix is only ever extended: asking for a smaller n after a
// larger one is a slice lookup.
//
// Errors: ErrInvalidDomainSize when n < 0.
// Complexity: O(n) multiplications on first use, O(1) afterwards.
func (t *Table) Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, arithErrorf(OpFactorial, ErrInvalidDomainSize, "n must be ≥ 0, got %d", n)
	}

	return new(big.Int).Set(t.factorial(n)), nil
}

// factorial is the shared-pointer variant of Factorial; n must be ≥ 0.
func (t *Table) factorial(n int) *big.Int {
	for i := len(t.fact); i <= n; i++ {
		next := new(big.Int).Mul(t.fact[i-1], big.NewInt(int64(i)))
		t.fact = append(t.fact, next)
	}

	return t.fact[n]
}

// NCr returns the binomial coefficient C(n, r).
//
// Policy:
//   - r < 0 or r > n  → 0
//   - r ∈ {0, n}      → 1
//   - otherwise r is reduced to min(r, n-r) and Pascal's rule
//     C(n, r) = C(n-1, r-1) + C(n-1, r) is evaluated through the memo.
//
// Complexity: O(r·(n-r)) additions on a cold table, O(1) when cached.
func (t *Table) NCr(n, r int) *big.Int {
	return new(big.Int).Set(t.binom(n, r))
}

// binom is the shared-pointer variant of NCr. Callers must not mutate the result.
func (t *Table) binom(n, r int) *big.Int {
	if r < 0 || r > n {
		return bigZero
	}
	if r == 0 || r == n {
		return bigOne
	}
	if n-r < r {
		r = n - r
	}
	if r == 1 {
		// C(n,1) = n; skip n memo entries of depth-one recursion.
		key := coef{n, 1}
		if v, ok := t.ncr[key]; ok {
			return v
		}
		v := big.NewInt(int64(n))
		t.ncr[key] = v

		return v
	}

	key := coef{n, r}
	if v, ok := t.ncr[key]; ok {
		return v
	}
	v := new(big.Int).Add(t.binom(n-1, r-1), t.binom(n-1, r))
	t.ncr[key] = v

	return v
}

// NPr returns the falling factorial n·(n-1)···(n-r+1), i.e. the number of
// ordered r-selections from n items. Returns 0 when r < 0 or r > n and 1
// when r == 0.
//
// Recurrence: P(n, r) = n · P(n-1, r-1), memoized.
// Complexity: O(r) multiplications on a cold table.
func (t *Table) NPr(n, r int) *big.Int {
	return new(big.Int).Set(t.falling(n, r))
}

// falling is the shared-pointer variant of NPr.
func (t *Table) falling(n, r int) *big.Int {
	if r < 0 || r > n {
		return bigZero
	}
	if r == 0 {
		return bigOne
	}

	key := coef{n, r}
	if v, ok := t.npr[key]; ok {
		return v
	}
	v := new(big.Int).Mul(big.NewInt(int64(n)), t.falling(n-1, r-1))
	t.npr[key] = v

	return v
}

// NCrRepetitive returns the multiset coefficient C(n+r-1, r): the number of
// size-r multisets over n symbols. By convention r == 0 yields 1 for every
// n ≥ 0, including the empty alphabet.
//
// Complexity: that of NCr(n+r-1, r).
func (t *Table) NCrRepetitive(n, r int) *big.Int {
	if r == 0 {
		return big.NewInt(1)
	}
	if n <= 0 || r < 0 {
		return big.NewInt(0)
	}

	return t.NCr(n+r-1, r)
}
