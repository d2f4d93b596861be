// SPDX-License-Identifier: MIT

// Package rankmath is the exact-arithmetic layer under every ranked space:
// factorials, binomial and falling-factorial coefficients, powers, sums of
// binomials over a size range and multiset counts, all over math/big.
//
// 🚀 What lives here?
//
//	Every cardinality reported by a generator and every place value used by
//	a number-system codec is computed by a *Table:
//	  • Factorial(n)                  n!, monotonic memo
//	  • NCr(n, r), NPr(n, r)          binomial / falling factorial, memoized
//	  • NCrRepetitive(n, r)           multiset coefficient C(n+r-1, r)
//	  • Power(b, e)                   binary exponentiation
//	  • TotalSubsetsInRange(a, b, n)  Σ C(n, i) for i ∈ [a, b]
//	  • MultisetCombinationsCount     [xᵏ] Π (1 + x + … + x^fᵢ)
//	  • MultisetPermutationsCount     length-k arrangements under per-symbol caps
//	  • SmallestNForNCrAbove / SmallestNForFactorialAbove  upward threshold scans
//
// ⚠️ Memory & concurrency:
//
//	A Table caches every value it has produced and never evicts. Scope one
//	Table to one logical computation (a cursor, a request, a test) and drop it
//	afterwards. A Table is NOT safe for concurrent use; give each goroutine its
//	own. There is deliberately no package-level Table.
//
// ⚙️ Usage:
//
//	t := rankmath.NewTable()
//	c := t.NCr(52, 5)            // 2598960
//	f, err := t.Factorial(20)    // 2432902008176640000
//
// All results are fresh *big.Int values owned by the caller.
package rankmath
