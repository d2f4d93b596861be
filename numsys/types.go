// SPDX-License-Identifier: MIT

package numsys

// Digits is a digit-place representation of a rank in one of the mixed-radix
// bases of this package. Its meaning depends on the producer:
//
//   - FactoradicDigits: d[i] ∈ [0, i], least-significant first (radix i+1).
//   - CombinadicDigits: strictly decreasing coordinates, highest degree first.
type Digits []int

// Clone returns an independent copy of d.
func (d Digits) Clone() Digits {
	if d == nil {
		return nil
	}
	out := make(Digits, len(d))
	copy(out, d)

	return out
}

// clone copies an index tuple; a nil input yields an empty, non-nil slice so
// callers can distinguish "the empty tuple" from "no tuple".
func clone(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
