// SPDX-License-Identifier: MIT
// Package sample: uniform draws with and without replacement.

package sample

import (
	"math/big"

	"github.com/katalvlaran/rankspace/ranked"
	"github.com/katalvlaran/rankspace/rankmath"
)

// maxShuffle bounds the universes sampled by partial shuffle; larger ones
// use rejection against a seen-set.
const maxShuffle = 1 << 20

// WithReplacement returns n elements of r, each drawn independently and
// uniformly from the whole universe.
//
// Errors: ErrSampleSize for n ≤ 0 or an empty universe.
// Complexity: O(n · cost of At).
func WithReplacement[T any](r ranked.Ranked[T], n int, opts ...Option) ([]T, error) {
	card := r.Cardinality()
	if n <= 0 || card.Sign() == 0 {
		return nil, sampleErrorf(MethodWithReplacement, ErrSampleSize, "n=%d from a universe of %v", n, card)
	}
	cfg := newConfig(opts...)

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		e, err := r.At(uniformRank(cfg.rng, card))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}

// WithoutReplacement returns n distinct elements of r in random order. Small
// universes where n covers more than half of them use a partial
// Fisher–Yates shuffle over all ranks; everything else draws ranks and
// rejects repeats.
//
// Errors: ErrSampleSize for n ≤ 0 or n > Cardinality().
// Complexity: O(n · cost of At) expected.
func WithoutReplacement[T any](r ranked.Ranked[T], n int, opts ...Option) ([]T, error) {
	card := r.Cardinality()
	if n <= 0 || card.Cmp(big.NewInt(int64(n))) < 0 {
		return nil, sampleErrorf(MethodWithoutReplacement, ErrSampleSize, "%d distinct from a universe of %v", n, card)
	}
	cfg := newConfig(opts...)

	ranks := distinctRanks(cfg, card, n)
	out := make([]T, 0, n)
	for _, rank := range ranks {
		e, err := r.At(rank)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}

// distinctRanks picks n distinct ranks in [0, card). Precondition: n ≤ card.
func distinctRanks(cfg config, card *big.Int, n int) []*big.Int {
	out := make([]*big.Int, 0, n)
	if size, err := rankmath.ToInt(card); err == nil && size <= maxShuffle && n*2 > size {
		for _, v := range partialShuffle(size, n, cfg.rng) {
			out = append(out, big.NewInt(int64(v)))
		}
		return out
	}

	seen := make(map[string]struct{}, n)
	for len(out) < n {
		rank := uniformRank(cfg.rng, card)
		key := rank.Text(62)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rank)
	}

	return out
}
