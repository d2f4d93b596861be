// Package rankspace ranks, unranks and enumerates combinatorial universes
// whose size is far beyond what can be listed.
//
// Every universe (permutations, combinations, subsets, their repetitive and
// multiset variants, and products of them) is treated as a finite ordered
// sequence with direct access: element i can be produced from i alone, so
// positions like 10¹¹ or 60!/4 cost a handful of big-integer operations.
//
// Under the hood the module is organized in layers:
//
//	rankmath/  factorials, binomials, falling factorials and multiset counts
//	            over math/big, memoized in an explicit Table
//	numsys/    factorial, combinadic and falling-factorial number systems,
//	            rank <-> object codecs and pure successor functions
//	ranked/    the Ranked[T] contract, one Generator per family, element
//	            mapping and composite (mixed-radix) products
//	sample/    uniform sampling with and without replacement
//	cmd/rankctl  command-line front end (count, rank, unrank, list, sample,
//	            chunk)
//
// Quick example:
//
//	g, _ := ranked.Combinations(3, 2)
//	m, _ := ranked.Map(g, []string{"Red", "Green", "Blue"})
//	for c := range m.All() {
//		fmt.Println(c) // [Red Green], [Red Blue], [Green Blue]
//	}
//
//	go get github.com/katalvlaran/rankspace
package rankspace
