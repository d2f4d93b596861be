package sample_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rankspace/ranked"
	"github.com/katalvlaran/rankspace/sample"
)

func combs(t *testing.T, n, r int) *ranked.Generator {
	t.Helper()
	g, err := ranked.Combinations(n, r)
	require.NoError(t, err)
	return g
}

// TestWithReplacement_Members checks every draw belongs to the universe.
func TestWithReplacement_Members(t *testing.T) {
	g := combs(t, 6, 3)
	all := slices.Collect(g.All())

	got, err := sample.WithReplacement[[]int](g, 200, sample.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, got, 200)
	for _, e := range got {
		assert.True(t, slices.ContainsFunc(all, func(x []int) bool { return slices.Equal(x, e) }), "%v", e)
	}
}

// TestWithReplacement_Deterministic repeats a seeded draw.
func TestWithReplacement_Deterministic(t *testing.T) {
	g := combs(t, 10, 4)
	a, err := sample.WithReplacement[[]int](g, 25, sample.WithSeed(99))
	require.NoError(t, err)
	b, err := sample.WithReplacement[[]int](g, 25, sample.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := sample.WithReplacement[[]int](g, 25)
	require.NoError(t, err)
	d, err := sample.WithReplacement[[]int](g, 25, sample.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, c, d, "seed 0 is the default seed")
}

// TestWithReplacement_RoughlyUniform buckets draws over a small universe.
func TestWithReplacement_RoughlyUniform(t *testing.T) {
	g, err := ranked.Permutations(3)
	require.NoError(t, err)

	const draws = 6000
	got, err := sample.WithReplacement[[]int](g, draws, sample.WithSeed(3))
	require.NoError(t, err)

	counts := map[[3]int]int{}
	for _, p := range got {
		counts[[3]int{p[0], p[1], p[2]}]++
	}
	require.Len(t, counts, 6)
	for k, c := range counts {
		assert.InDelta(t, draws/6, c, 200, "%v drawn %d times", k, c)
	}
}

// TestWithReplacement_HugeUniverse samples 100! permutations.
func TestWithReplacement_HugeUniverse(t *testing.T) {
	g, err := ranked.Permutations(100)
	require.NoError(t, err)
	got, err := sample.WithReplacement[[]int](g, 3, sample.WithSeed(5))
	require.NoError(t, err)
	for _, p := range got {
		sorted := slices.Sorted(slices.Values(p))
		for i, v := range sorted {
			require.Equal(t, i, v)
		}
	}
}

// TestWithoutReplacement_Distinct covers both drawing strategies.
func TestWithoutReplacement_Distinct(t *testing.T) {
	cases := []struct {
		name string
		n, r int
		k    int
	}{
		{"shuffle/all", 6, 3, 20},
		{"shuffle/most", 8, 2, 20},
		{"rejection/few", 8, 2, 5},
		{"rejection/big", 40, 10, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := combs(t, tc.n, tc.r)
			got, err := sample.WithoutReplacement[[]int](g, tc.k, sample.WithSeed(11))
			require.NoError(t, err)
			require.Len(t, got, tc.k)

			seen := map[string]bool{}
			for _, e := range got {
				key := fmt.Sprint(e)
				assert.False(t, seen[key], "duplicate %v", e)
				seen[key] = true
				assert.Len(t, e, tc.r)
			}
		})
	}
}

// TestWithoutReplacement_Exhaustive returns a permutation of the universe.
func TestWithoutReplacement_Exhaustive(t *testing.T) {
	g, err := ranked.Subsets(4)
	require.NoError(t, err)
	got, err := sample.WithoutReplacement[[]int](g, 16, sample.WithRand(rand.New(rand.NewSource(2))))
	require.NoError(t, err)
	assert.ElementsMatch(t, slices.Collect(g.All()), got)
}

// TestSample_Errors covers invalid sizes and empty universes.
func TestSample_Errors(t *testing.T) {
	g := combs(t, 4, 2)

	_, err := sample.WithReplacement[[]int](g, 0)
	assert.ErrorIs(t, err, sample.ErrSampleSize)
	_, err = sample.WithoutReplacement[[]int](g, -1)
	assert.ErrorIs(t, err, sample.ErrSampleSize)
	_, err = sample.WithoutReplacement[[]int](g, 7)
	assert.ErrorIs(t, err, sample.ErrSampleSize)

	empty := combs(t, 0, 2)
	_, err = sample.WithReplacement[[]int](empty, 1)
	assert.ErrorIs(t, err, sample.ErrSampleSize)
	_, err = sample.WithoutReplacement[[]int](empty, 1)
	assert.ErrorIs(t, err, sample.ErrSampleSize)
}

// TestWithRand_PanicsOnNil enforces the option contract.
func TestWithRand_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { sample.WithRand(nil) })
}

// TestDeriveSeed gives distinct, reproducible child seeds.
func TestDeriveSeed(t *testing.T) {
	seen := map[int64]bool{}
	for s := uint64(0); s < 64; s++ {
		v := sample.DeriveSeed(42, s)
		assert.Equal(t, v, sample.DeriveSeed(42, s))
		assert.False(t, seen[v], "stream %d collides", s)
		seen[v] = true
	}
	assert.NotEqual(t, sample.DeriveSeed(1, 0), sample.DeriveSeed(2, 0))
}

// TestSample_Composite samples a product universe.
func TestSample_Composite(t *testing.T) {
	p := ranked.CartesianProduct([]string{"S", "M", "L"}, []string{"red", "blue"})
	got, err := sample.WithoutReplacement[[]string](p, 6, sample.WithSeed(4))
	require.NoError(t, err)
	assert.ElementsMatch(t, slices.Collect(p.All()), got)
}
