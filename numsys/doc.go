// SPDX-License-Identifier: MIT

// Package numsys implements the three number systems that put combinatorial
// objects in bijection with natural-number ranks, plus pure successor
// functions for cheap sequential traversal.
//
// 🚀 Number systems:
//
//	Factorial base (permutations of n):
//	  rank = Σ dᵢ·i!,  0 ≤ dᵢ ≤ i
//	  digits select, most significant first, from a shrinking pool 0..n-1.
//
//	Combinatorial number system (r-combinations of n):
//	  N = Σ C(cᵢ, r-i) over strictly decreasing coordinates cᵢ = n-1-idxᵢ,
//	  rank = C(n, r) - 1 - N  so rank 0 is the lexicographically first tuple.
//
//	Falling-factorial base (k-out-of-n partial permutations):
//	  place value of position i is P(n-1-i, k-1-i); digits select from the
//	  shrinking pool exactly like the factorial base, stopping after k picks.
//
// Every system orders objects lexicographically by their index tuples, so
// rank order, successor order and enumeration order coincide.
//
// ⚙️ Two layers:
//
//   - Encode*/Decode*/…Digits  raw codecs. Preconditions (rank in range,
//     well-formed tuple) are the caller's responsibility; ranked generators
//     call these once bounds are already guaranteed.
//   - *Rank / *Unrank  checked facade. Validates the domain (ErrInvalidDomainSize)
//     and the input (ErrOutOfRange), then delegates to the raw codec.
//
// Successors (Next*) are value-in/value-out: they never modify their argument
// and always return freshly allocated slices.
//
// Example:
//
//	t := rankmath.NewTable()
//	r, _ := numsys.KPermutationRank(t, 8, []int{4, 6, 2, 0})   // 1000
//	p, _ := numsys.KPermutationUnrank(t, big.NewInt(1000), 8, 4) // [4 6 2 0]
package numsys
