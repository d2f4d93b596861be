// SPDX-License-Identifier: MIT
// Package ranked: functional options for generator constructors.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)); later options
//     override earlier ones.
//   • Option constructors do NOT validate: sizes are domain inputs and are
//     rejected by the constructor with ErrInvalidDomainSize, so that every
//     bad size surfaces as an error at build time rather than a panic.
//   • Options that a family does not understand are ignored by it.

package ranked

// Option customizes a generator constructor.
type Option func(*genConfig)

// genConfig aggregates the optional knobs of all constructors.
type genConfig struct {
	size    int  // selection size (Permutations, MultisetPermutations)
	sizeSet bool // size was given explicitly

	from, to int  // size window (Subsets)
	rangeSet bool // window was given explicitly
}

// WithSize sets the selection size k: Permutations(n) becomes the
// k-permutations of n, MultisetPermutations becomes words of length k.
// Default: the full source (n, or the multiset total).
func WithSize(k int) Option {
	return func(c *genConfig) {
		c.size, c.sizeSet = k, true
	}
}

// WithSizeRange restricts Subsets to sizes in [from, to].
// Default: [0, n].
func WithSizeRange(from, to int) Option {
	return func(c *genConfig) {
		c.from, c.to, c.rangeSet = from, to, true
	}
}

// newGenConfig applies opts over zero defaults.
func newGenConfig(opts ...Option) genConfig {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
