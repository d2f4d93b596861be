// SPDX-License-Identifier: MIT
// Package numsys: successor functions.
//
// Each Next* function maps one object to the next one in lexicographic order
// of index tuples, returning (next, true), or (nil, false) once the input is
// the last object of its domain. Inputs are never modified.
//
// Provided successors:
//   - NextFactoradic:          mixed-radix increment of factorial-base digits.
//   - NextCombination:         combinadic successor on increasing tuples.
//   - NextCombinadic:          the same step on decreasing combinadic coordinates.
//   - NextPermutation:         classic lexicographic next permutation (duplicates allowed).
//   - NextKPermutation:        partial permutations of k out of n.
//   - NextTuple:               base-n odometer (permutations with repetition).
//   - NextMultichoose:         non-decreasing tuples (combinations with repetition).
//   - NextMultisetPermutation: words under per-symbol caps.
//   - NextMultisetCombination: non-decreasing words under per-symbol caps.
//   - NextSubset:              increasing tuples whose length lies in [from, to].

package numsys

// NextFactoradic increments factorial-base digits (least-significant first,
// d[i] ∈ [0, i]) by one, carrying into higher places.
// Complexity: O(n) worst case, O(1) amortized.
func NextFactoradic(d Digits) (Digits, bool) {
	next := d.Clone()
	for i := 1; i < len(next); i++ {
		if next[i] < i {
			next[i]++

			return next, true
		}
		next[i] = 0
	}

	return nil, false
}

// NextCombination returns the lexicographic successor of an increasing
// r-tuple over 0..n-1: the rightmost entry that can still grow (the lowest
// free coordinate of the combinadic form) is incremented and everything to
// its right is reset to the minimal increasing continuation.
// Complexity: O(r).
func NextCombination(idx []int, n int) ([]int, bool) {
	r := len(idx)
	for i := r - 1; i >= 0; i-- {
		// position i may reach at most n-r+i
		if idx[i] < n-r+i {
			next := clone(idx)
			next[i]++
			for j := i + 1; j < r; j++ {
				next[j] = next[j-1] + 1
			}

			return next, true
		}
	}

	return nil, false
}

// NextCombinadic returns the coordinates of the next combination directly
// on the decreasing form c₀ > c₁ > … ≥ 0 produced by CombinadicDigits: the
// rightmost coordinate above its floor (c[i] > r-1-i) is lowered by one and
// every coordinate after it takes the largest value still below its left
// neighbour. n is not needed since coordinates only ever decrease.
// Complexity: O(r).
func NextCombinadic(c Digits) (Digits, bool) {
	r := len(c)
	for i := r - 1; i >= 0; i-- {
		if c[i] > r-1-i {
			next := c.Clone()
			next[i]--
			for j := i + 1; j < r; j++ {
				next[j] = next[j-1] - 1
			}

			return next, true
		}
	}

	return nil, false
}

// NextPermutation returns the lexicographic successor of perm (values may
// repeat, in which case only distinct arrangements are visited).
// Complexity: O(n).
func NextPermutation(perm []int) ([]int, bool) {
	n := len(perm)
	i := n - 2
	for i >= 0 && perm[i] >= perm[i+1] {
		i--
	}
	if i < 0 {
		return nil, false
	}

	next := clone(perm)
	j := n - 1
	for next[j] <= next[i] {
		j--
	}
	next[i], next[j] = next[j], next[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		next[l], next[r] = next[r], next[l]
	}

	return next, true
}

// NextKPermutation returns the lexicographic successor of a partial
// permutation of len(perm) distinct values from 0..n-1.
// Complexity: O(k·n).
func NextKPermutation(perm []int, n int) ([]int, bool) {
	k := len(perm)
	used := make([]bool, n)
	for _, v := range perm {
		used[v] = true
	}

	next := clone(perm)
	for i := k - 1; i >= 0; i-- {
		used[next[i]] = false
		for v := next[i] + 1; v < n; v++ {
			if used[v] {
				continue
			}
			next[i] = v
			used[v] = true
			fillSmallestUnused(next[i+1:], used)

			return next, true
		}
	}

	return nil, false
}

// fillSmallestUnused writes the smallest unused values, ascending, into dst.
func fillSmallestUnused(dst []int, used []bool) {
	v := 0
	for j := range dst {
		for used[v] {
			v++
		}
		dst[j] = v
		used[v] = true
	}
}

// NextTuple advances a base-n odometer (rightmost digit fastest).
// Complexity: O(r) worst case.
func NextTuple(t []int, n int) ([]int, bool) {
	next := clone(t)
	for i := len(next) - 1; i >= 0; i-- {
		if next[i] < n-1 {
			next[i]++

			return next, true
		}
		next[i] = 0
	}

	return nil, false
}

// NextMultichoose returns the lexicographic successor of a non-decreasing
// r-tuple over 0..n-1.
// Complexity: O(r).
func NextMultichoose(t []int, n int) ([]int, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i] < n-1 {
			next := clone(t)
			v := next[i] + 1
			for j := i; j < len(next); j++ {
				next[j] = v
			}

			return next, true
		}
	}

	return nil, false
}

// NextMultisetPermutation returns the lexicographic successor of a word
// whose symbol s appears at most caps[s] times.
// Complexity: O(k·len(caps)).
func NextMultisetPermutation(t []int, caps []int) ([]int, bool) {
	counts := make([]int, len(caps))
	for _, s := range t {
		counts[s]++
	}

	next := clone(t)
	for i := len(next) - 1; i >= 0; i-- {
		counts[next[i]]--
		for s := next[i] + 1; s < len(caps); s++ {
			if counts[s] >= caps[s] {
				continue
			}
			next[i] = s
			counts[s]++
			// smallest available symbols complete the word
			sym := 0
			for j := i + 1; j < len(next); j++ {
				for counts[sym] >= caps[sym] {
					sym++
				}
				next[j] = sym
				counts[sym]++
			}

			return next, true
		}
	}

	return nil, false
}

// NextMultisetCombination returns the lexicographic successor of a
// non-decreasing word whose symbol s appears at most caps[s] times.
// Complexity: O(k + len(caps)) per attempted position.
func NextMultisetCombination(t []int, caps []int) ([]int, bool) {
	k := len(t)
	// suffix[s] = Σ caps[s..]
	suffix := make([]int, len(caps)+1)
	for s := len(caps) - 1; s >= 0; s-- {
		suffix[s] = suffix[s+1] + caps[s]
	}

	for i := k - 1; i >= 0; i-- {
		// Entries before i are ≤ t[i], so symbols above t[i] are untouched.
		s := t[i] + 1
		for s < len(caps) && caps[s] == 0 {
			s++
		}
		if s >= len(caps) || suffix[s] < k-i {
			continue
		}

		next := clone(t)
		j := i
		for sym := s; j < k; sym++ {
			for c := 0; c < caps[sym] && j < k; c++ {
				next[j] = sym
				j++
			}
		}

		return next, true
	}

	return nil, false
}

// NextSubset returns the lexicographic (prefix-first) successor of an
// increasing tuple over 0..n-1 among tuples whose length lies in [from, to].
//
// Order: a tuple precedes all of its extensions, so after t come first the
// extensions of t (smallest: append last+1, then pad to length from), then
// tuples that bump a trailing entry.
// Complexity: O(to) per call.
func NextSubset(t []int, n, from, to int) ([]int, bool) {
	next := clone(t)

	// 1) Extend by last+1 if a tuple of admissible length can still be formed.
	start := 0
	if len(next) > 0 {
		start = next[len(next)-1] + 1
	}
	if len(next) < to {
		if out, ok := padFrom(next, start, n, from); ok {
			return out, true
		}
	}

	// 2) Bump the deepest entry that can grow, dropping everything after it.
	for len(next) > 0 {
		last := next[len(next)-1]
		next = next[:len(next)-1]
		if out, ok := padFrom(next, last+1, n, from); ok {
			return out, true
		}
	}

	return nil, false
}

// padFrom appends start, start+1, … to prefix until the length is at least
// max(len(prefix)+1, from). It reports false if the values would run past n-1.
func padFrom(prefix []int, start, n, from int) ([]int, bool) {
	need := from - len(prefix)
	if need < 1 {
		need = 1
	}
	if start+need-1 > n-1 {
		return nil, false
	}

	out := make([]int, len(prefix), len(prefix)+need)
	copy(out, prefix)
	for v := start; v < start+need; v++ {
		out = append(out, v)
	}

	return out, true
}
