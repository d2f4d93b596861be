// SPDX-License-Identifier: MIT
// rankctl: family selection from flags.

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rankspace/ranked"
)

// familyFlags holds the flags shared by every command that builds a universe.
type familyFlags struct {
	n      int
	r      int
	freqs  []int
	from   int
	to     int
	source []string

	nSet, rSet, rangeSet bool
}

// families maps the CLI family names to their constructors.
var families = map[string]func(f *familyFlags) (*ranked.Generator, error){
	"perm": func(f *familyFlags) (*ranked.Generator, error) {
		return ranked.Permutations(f.n)
	},
	"kperm": func(f *familyFlags) (*ranked.Generator, error) {
		return ranked.Permutations(f.n, ranked.WithSize(f.r))
	},
	"repperm": func(f *familyFlags) (*ranked.Generator, error) {
		return ranked.RepetitivePermutations(f.n, f.r)
	},
	"msperm": func(f *familyFlags) (*ranked.Generator, error) {
		var opts []ranked.Option
		if f.rSet {
			opts = append(opts, ranked.WithSize(f.r))
		}
		return ranked.MultisetPermutations(f.n, f.freqs, opts...)
	},
	"comb": func(f *familyFlags) (*ranked.Generator, error) {
		return ranked.Combinations(f.n, f.r)
	},
	"repcomb": func(f *familyFlags) (*ranked.Generator, error) {
		return ranked.RepetitiveCombinations(f.n, f.r)
	},
	"mscomb": func(f *familyFlags) (*ranked.Generator, error) {
		return ranked.MultisetCombinations(f.n, f.freqs, f.r)
	},
	"subsets": func(f *familyFlags) (*ranked.Generator, error) {
		var opts []ranked.Option
		if f.rangeSet {
			opts = append(opts, ranked.WithSizeRange(f.from, f.to))
		}
		return ranked.Subsets(f.n, opts...)
	},
}

func familyNames() string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

// bind registers the family flags on cmd.
func (f *familyFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.n, "n", 0, "source size (defaults to len(--source) or len(--freq))")
	fs.IntVar(&f.r, "r", 0, "selection size")
	fs.IntSliceVar(&f.freqs, "freq", nil, "per-position multiplicities for msperm and mscomb")
	fs.IntVar(&f.from, "from", 0, "smallest subset size")
	fs.IntVar(&f.to, "to", 0, "largest subset size")
	fs.StringSliceVar(&f.source, "source", nil, "elements to map index tuples onto")
}

// resolve records which flags were given and fills n from the source or the
// frequency list when --n is absent.
func (f *familyFlags) resolve(cmd *cobra.Command) error {
	fs := cmd.Flags()
	f.nSet = fs.Changed("n")
	f.rSet = fs.Changed("r")
	f.rangeSet = fs.Changed("from") || fs.Changed("to")

	if !f.nSet {
		switch {
		case len(f.source) > 0:
			f.n = len(f.source)
		case len(f.freqs) > 0:
			f.n = len(f.freqs)
		}
	}
	if f.rangeSet {
		if !fs.Changed("from") {
			f.from = 0
		}
		if !fs.Changed("to") {
			f.to = f.n
		}
	}
	if len(f.source) > 0 && len(f.source) != f.n {
		return fmt.Errorf("--source has %d elements but --n is %d", len(f.source), f.n)
	}

	return nil
}

// generator builds the named family.
func (f *familyFlags) generator(name string) (*ranked.Generator, error) {
	ctor, ok := families[name]
	if !ok {
		return nil, fmt.Errorf("unknown family %q, want one of: %s", name, familyNames())
	}

	return ctor(f)
}

// universe builds the named family rendered as strings: the mapped source
// elements when --source is given, the indices otherwise.
func (f *familyFlags) universe(name string) (*ranked.Generator, ranked.Ranked[[]string], error) {
	g, err := f.generator(name)
	if err != nil {
		return nil, nil, err
	}
	if len(f.source) > 0 {
		m, err := ranked.Map(g, f.source)
		if err != nil {
			return nil, nil, err
		}
		return g, m, nil
	}

	return g, ranked.Transform[[]int, []string](g, itoaAll), nil
}

func itoaAll(idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = strconv.Itoa(v)
	}

	return out
}

// formatElement renders one element as "[a b c]".
func formatElement(e []string) string {
	return "[" + strings.Join(e, " ") + "]"
}
