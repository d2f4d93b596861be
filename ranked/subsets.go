// SPDX-License-Identifier: MIT
// Package ranked: size-range subsets.
//
// Order: increasing index tuples compared lexicographically with a prefix
// preceding its extensions, e.g. for n=3: [], [0], [0 1], [0 1 2], [0 2],
// [1], [1 2], [2]. A size window [from, to] keeps only tuples of admissible
// length, preserving that order.

package ranked

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/rankspace/numsys"
	"github.com/katalvlaran/rankspace/rankmath"
)

// Subsets returns the subsets of n positions whose size lies in [from, to]
// (default [0, n], i.e. the power set) as increasing index tuples.
// Cardinality: Σ C(n, i) for i in [from, to].
//
// Errors: ErrInvalidDomainSize for n < 0 or a window outside 0 ≤ from ≤ to ≤ n.
func Subsets(n int, opts ...Option) (*Generator, error) {
	if err := validateSource(MethodSubsets, n); err != nil {
		return nil, err
	}
	cfg := newGenConfig(opts...)
	from, to := 0, n
	if cfg.rangeSet {
		from, to = cfg.from, cfg.to
	}
	if err := validateRange(MethodSubsets, n, from, to); err != nil {
		return nil, err
	}

	t := rankmath.NewTable()
	name := fmt.Sprintf("%s(n=%d, sizes=[%d,%d])", MethodSubsets, n, from, to)

	return newGenerator(name, n, t.TotalSubsetsInRange(from, to, n), subsetFamily{n: n, from: from, to: to}), nil
}

type subsetFamily struct{ n, from, to int }

func (f subsetFamily) first() []int { return ascending(f.from) }

func (f subsetFamily) next(cur []int) ([]int, bool) {
	return numsys.NextSubset(cur, f.n, f.from, f.to)
}

// unrank descends the prefix tree: the current prefix (if admissible) takes
// one rank, then each candidate next value v owns a block of
// Σ C(n-1-v, j) completions, j chosen so the final size stays in the window.
func (f subsetFamily) unrank(t *rankmath.Table, rank *big.Int) []int {
	rem := new(big.Int).Set(rank)
	out := make([]int, 0, f.to)
	last := -1
	for {
		s := len(out)
		if s >= f.from && s <= f.to {
			if rem.Sign() == 0 {
				return out
			}
			rem.Sub(rem, bigOne)
		}

		descended := false
		for v := last + 1; v < f.n; v++ {
			block := t.TotalSubsetsInRange(f.from-(s+1), f.to-(s+1), f.n-1-v)
			if rem.Cmp(block) < 0 {
				out = append(out, v)
				last = v
				descended = true
				break
			}
			rem.Sub(rem, block)
		}
		if !descended {
			// unreachable for rank < cardinality
			return out
		}
	}
}

var bigOne = big.NewInt(1)
