// SPDX-License-Identifier: MIT

// Package ranked provides ranked generators: combinatorial universes that can
// be counted, enumerated in lexicographic order, and indexed directly by rank.
//
// 🚀 The contract (Ranked[T]):
//
//	Cardinality()           exact size of the universe (*big.Int)
//	All()                   every element, lexicographic order of index tuples
//	Stepped(step, start)    elements at start, start+step, start+2·step, …,
//	                         each obtained by unranking, never by skipping
//	At(rank)                one element, directly
//
// ✨ Families (all return *Generator, yielding index tuples []int):
//
//	Permutations(n, WithSize(k))            unique k-permutations, P(n,k)
//	RepetitivePermutations(n, r)            words of length r, nʳ
//	MultisetPermutations(n, freqs, …)       words under per-symbol caps
//	Combinations(n, r)                      unique r-combinations, C(n,r)
//	RepetitiveCombinations(n, r)            multisets of size r, C(n+r-1,r)
//	MultisetCombinations(n, freqs, r)       sub-multisets of size r
//	Subsets(n, WithSizeRange(a, b))         subsets with size in [a,b]
//
// 🧩 Composition:
//
//	Map(g, source)                  index tuples → element slices
//	Transform(r, fn)                arbitrary element projection
//	Product(slots…)                 mixed-radix product, last slot fastest
//	CartesianProduct(lists…)        one element from every list
//	ConstrainedProduct(sizes, srcs…)  one combination from every source
//
// ⚙️ Conventions:
//
//   - Selection size 0 yields exactly one empty tuple.
//   - An empty source with a positive selection size yields nothing, except
//     inside CartesianProduct / ConstrainedProduct where such a slot is the
//     single empty selection so the product stays well defined.
//   - Sources are addressed by position: duplicate values are legal and give
//     duplicate-looking but distinct elements.
//   - Construction validates eagerly (ErrInvalidDomainSize) and computes the
//     cardinality once; generators are immutable and safe to share.
//   - Every range over All/Stepped owns a fresh cursor and a fresh
//     rankmath.Table; a single sequence must not be ranged from two
//     goroutines at once, but two sequences are fully independent.
//
// Example:
//
//	g, _ := ranked.Combinations(3, 2)
//	colors, _ := ranked.Map(g, []string{"Red", "Green", "Blue"})
//	for c := range colors.All() {
//	    fmt.Println(c) // [Red Green] [Red Blue] [Green Blue]
//	}
package ranked
