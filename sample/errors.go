// SPDX-License-Identifier: MIT
// Package sample: sentinel errors.

package sample

import (
	"errors"
	"fmt"
)

// ErrSampleSize indicates a non-positive sample size, an empty universe, or
// more distinct draws than the universe holds.
var ErrSampleSize = errors.New("sample: invalid sample size")

// Method names used as error prefixes.
const (
	MethodWithReplacement    = "WithReplacement"
	MethodWithoutReplacement = "WithoutReplacement"
)

// sampleErrorf returns "<method>: <detail>: <sentinel>".
func sampleErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
