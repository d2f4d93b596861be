// SPDX-License-Identifier: MIT
// Package numsys: sentinel error set.

package numsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rankspace/rankmath"
)

var (
	// ErrOutOfRange indicates a rank outside [0, cardinality) or an index
	// tuple that is not a valid object of the declared domain.
	ErrOutOfRange = errors.New("numsys: rank or index tuple out of range")

	// ErrInvalidDomainSize is shared with rankmath so a single errors.Is check
	// works across layers.
	ErrInvalidDomainSize = rankmath.ErrInvalidDomainSize
)

// Facade method names used as error prefixes.
const (
	MethodPermutationRank    = "PermutationRank"
	MethodPermutationUnrank  = "PermutationUnrank"
	MethodCombinationRank    = "CombinationRank"
	MethodCombinationUnrank  = "CombinationUnrank"
	MethodKPermutationRank   = "KPermutationRank"
	MethodKPermutationUnrank = "KPermutationUnrank"
)

// codecErrorf returns "<method>: <detail>: <sentinel>" with the sentinel wrapped.
func codecErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
