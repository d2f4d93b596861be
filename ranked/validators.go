// SPDX-License-Identifier: MIT
// Package ranked: construction-time validation helpers.
//
// Each helper returns an error wrapping ErrInvalidDomainSize with the
// constructor name as prefix, so all families reject bad sizes uniformly.

package ranked

// validateSource ensures n ≥ 0.
func validateSource(method string, n int) error {
	if n < 0 {
		return rankedErrorf(method, ErrInvalidDomainSize, "source size must be ≥ 0, got %d", n)
	}

	return nil
}

// validateSelection ensures r ≥ 0 and, for non-empty sources, r ≤ limit.
// An empty source accepts any r ≥ 0 and yields no elements when r > 0.
func validateSelection(method string, n, r, limit int) error {
	if r < 0 {
		return rankedErrorf(method, ErrInvalidDomainSize, "selection size must be ≥ 0, got %d", r)
	}
	if n > 0 && r > limit {
		return rankedErrorf(method, ErrInvalidDomainSize, "selection size %d exceeds %d", r, limit)
	}

	return nil
}

// validateFrequencies checks len(freqs) == n and freqs[i] ≥ 0, returning
// Σ freqs.
func validateFrequencies(method string, n int, freqs []int) (int, error) {
	if len(freqs) != n {
		return 0, rankedErrorf(method, ErrInvalidDomainSize, "%d frequencies for a source of %d", len(freqs), n)
	}
	total := 0
	for i, f := range freqs {
		if f < 0 {
			return 0, rankedErrorf(method, ErrInvalidDomainSize, "frequency[%d] must be ≥ 0, got %d", i, f)
		}
		total += f
	}

	return total, nil
}

// validateRange checks 0 ≤ from ≤ to ≤ n.
func validateRange(method string, n, from, to int) error {
	if from < 0 || to > n || from > to {
		return rankedErrorf(method, ErrInvalidDomainSize, "size range [%d,%d] outside [0,%d]", from, to, n)
	}

	return nil
}
