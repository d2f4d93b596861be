// SPDX-License-Identifier: MIT

// Package sample draws random elements from ranked universes.
//
// Sampling never enumerates: it draws ranks uniformly in [0, Cardinality())
// and decodes each one with At, so universes far beyond 2⁶⁴ elements are
// sampled as cheaply as small ones.
//
// Determinism:
//   - Randomness comes only from a *rand.Rand chosen through options.
//   - Without options a fixed default seed is used, so results are
//     reproducible unless the caller asks otherwise.
//   - math/rand.Rand is not goroutine-safe; give every goroutine its own
//     source (WithSeed or WithRand).
//
// Errors are sentinels matched with errors.Is; see ErrSampleSize.
package sample
