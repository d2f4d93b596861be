// SPDX-License-Identifier: MIT
// Package ranked: sentinel error set.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • ErrInvalidDomainSize and ErrOutOfRange are the same values as in
//     rankmath/numsys, so one check works across layers.
//   • Validation happens at construction (sizes, frequencies) or at the
//     entry of Stepped/At (step, start, rank); sequences never fail midway.

package ranked

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rankspace/numsys"
	"github.com/katalvlaran/rankspace/rankmath"
)

var (
	// ErrInvalidDomainSize indicates a negative size, a selection larger than
	// its source, or a frequency list that does not fit the source.
	ErrInvalidDomainSize = rankmath.ErrInvalidDomainSize

	// ErrOutOfRange indicates a rank (or start position) outside the universe.
	ErrOutOfRange = numsys.ErrOutOfRange

	// ErrInvalidStep indicates a non-positive step for Stepped.
	ErrInvalidStep = errors.New("ranked: step must be positive")
)

// Method names used as error prefixes.
const (
	MethodPermutations           = "Permutations"
	MethodRepetitivePermutations = "RepetitivePermutations"
	MethodMultisetPermutations   = "MultisetPermutations"
	MethodCombinations           = "Combinations"
	MethodRepetitiveCombinations = "RepetitiveCombinations"
	MethodMultisetCombinations   = "MultisetCombinations"
	MethodSubsets                = "Subsets"
	MethodMap                    = "Map"
	MethodConstrainedProduct     = "ConstrainedProduct"
	MethodStepped                = "Stepped"
	MethodAt                     = "At"
)

// rankedErrorf returns "<method>: <detail>: <sentinel>" keeping the sentinel
// reachable with errors.Is.
func rankedErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
