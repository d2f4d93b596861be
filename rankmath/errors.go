// SPDX-License-Identifier: MIT
// Package rankmath: sentinel error set.
//
// Callers branch with errors.Is; implementations attach context with %w
// (see arithErrorf). Sentinel messages are stable.

package rankmath

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDomainSize indicates a negative size, a selection larger than
	// its source, a negative frequency or a frequency/supply list whose length
	// does not match the source size.
	ErrInvalidDomainSize = errors.New("rankmath: invalid domain size")

	// ErrIndexOverflow indicates that an exact integer cannot be represented
	// as a Go int (used when a bounded index is converted back into an array
	// position).
	ErrIndexOverflow = errors.New("rankmath: index not representable as int")
)

// arithErrorf prefixes a sentinel with the operation name and a formatted
// detail, keeping the sentinel reachable through errors.Is.
// Result shape: "<op>: <detail>: <sentinel>".
func arithErrorf(op string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), sentinel)
}
