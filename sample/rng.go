// SPDX-License-Identifier: MIT
// Package sample: RNG helpers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; use DeriveSeed to give each worker its own stream.

package sample

import (
	"math/big"
	"math/rand"
)

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to
// defaultRNGSeed.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream id into a new seed with a
// SplitMix64 finalizer, so nearby stream ids give unrelated sources.
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// partialShuffle returns k distinct values from [0, n) in random order by
// running only the first k steps of a Fisher–Yates shuffle.
// Precondition: 0 ≤ k ≤ n.
// Complexity: O(n) space, O(n + k) time.
func partialShuffle(n, k int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		p[i], p[j] = p[j], p[i]
	}

	return p[:k]
}

// uniformRank draws a rank uniformly from [0, card). card must be positive.
func uniformRank(rng *rand.Rand, card *big.Int) *big.Int {
	return new(big.Int).Rand(rng, card)
}
