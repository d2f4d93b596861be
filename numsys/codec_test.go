package numsys_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rankspace/numsys"
	"github.com/katalvlaran/rankspace/rankmath"
)

// TestFactorialBase_Scenario checks [3,2,1,0] ↔ 23 over n=4.
func TestFactorialBase_Scenario(t *testing.T) {
	tb := rankmath.NewTable()

	rank, err := numsys.PermutationRank(tb, []int{3, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, int64(23), rank.Int64())

	perm, err := numsys.PermutationUnrank(tb, big.NewInt(23), 4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, perm)
}

// TestFallingFactorialBase_Scenario checks [4,6,2,0] ↔ 1000 over n=8, k=4.
func TestFallingFactorialBase_Scenario(t *testing.T) {
	tb := rankmath.NewTable()

	rank, err := numsys.KPermutationRank(tb, 8, []int{4, 6, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), rank.Int64())

	perm, err := numsys.KPermutationUnrank(tb, big.NewInt(1000), 8, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6, 2, 0}, perm)
}

// TestCombinatorialNumberSystem_Scenario checks [1,2,3,4] ↔ 35 over n=8, r=4.
func TestCombinatorialNumberSystem_Scenario(t *testing.T) {
	tb := rankmath.NewTable()

	rank, err := numsys.CombinationRank(tb, 8, []int{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, int64(35), rank.Int64())

	idx, err := numsys.CombinationUnrank(tb, big.NewInt(35), 8, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, idx)
}

// TestFactorialBase_Bijection decodes and re-encodes every rank for n ≤ 6
// and checks that ranks come out in strictly lexicographic order.
func TestFactorialBase_Bijection(t *testing.T) {
	tb := rankmath.NewTable()
	for n := 0; n <= 6; n++ {
		card, _ := tb.Factorial(n)
		var prev []int
		for r := int64(0); r < card.Int64(); r++ {
			perm := numsys.DecodePermutation(big.NewInt(r), n)
			require.NoError(t, numsys.ValidatePermutation(perm, n))
			assert.Equal(t, r, numsys.EncodePermutation(tb, perm).Int64(), "n=%d rank=%d", n, r)
			if prev != nil {
				assert.True(t, lexLess(prev, perm), "order at n=%d rank=%d", n, r)
			}
			prev = perm
		}
	}
}

// TestFactoradicDigits_RoundTrip covers the digit-place layer directly.
func TestFactoradicDigits_RoundTrip(t *testing.T) {
	for r := int64(0); r < 120; r++ {
		d := numsys.FactoradicDigits(big.NewInt(r), 5)
		for i, digit := range d {
			assert.LessOrEqual(t, digit, i, "digit %d of rank %d", i, r)
		}
		assert.Equal(t, r, numsys.FromFactoradic(d).Int64())
		assert.Equal(t, d, numsys.PermutationToDigits(numsys.DigitsToPermutation(d)))
	}
}

// TestCombinatorialNumberSystem_Bijection covers every (n, r) with n ≤ 9.
func TestCombinatorialNumberSystem_Bijection(t *testing.T) {
	tb := rankmath.NewTable()
	for n := 0; n <= 9; n++ {
		for r := 0; r <= n; r++ {
			card := tb.NCr(n, r).Int64()
			var prev []int
			for rank := int64(0); rank < card; rank++ {
				idx := numsys.DecodeCombination(tb, big.NewInt(rank), n, r)
				require.Len(t, idx, r)
				assert.Equal(t, rank, numsys.EncodeCombination(tb, n, idx).Int64(), "n=%d r=%d rank=%d", n, r, rank)
				if prev != nil {
					assert.True(t, lexLess(prev, idx), "order n=%d r=%d rank=%d", n, r, rank)
				}
				prev = idx
			}
		}
	}
}

// TestCombinadicDigits_Decreasing verifies the coordinate representation.
func TestCombinadicDigits_Decreasing(t *testing.T) {
	tb := rankmath.NewTable()
	// rank 35 of C(8,4): N = 69 - 35 = 34 = C(6,4)+C(5,3)+C(4,2)+C(3,1)
	d := numsys.CombinadicDigits(tb, big.NewInt(35), 8, 4)
	assert.Equal(t, numsys.Digits{6, 5, 4, 3}, d)
	assert.Equal(t, []int{1, 2, 3, 4}, numsys.CombinadicToCombination(d, 8))
}

// TestFallingFactorialBase_Bijection covers every (n, k) with n ≤ 6.
func TestFallingFactorialBase_Bijection(t *testing.T) {
	tb := rankmath.NewTable()
	for n := 0; n <= 6; n++ {
		for k := 0; k <= n; k++ {
			card := tb.NPr(n, k).Int64()
			var prev []int
			for rank := int64(0); rank < card; rank++ {
				perm := numsys.DecodeKPermutation(tb, big.NewInt(rank), n, k)
				require.Len(t, perm, k)
				assert.Equal(t, rank, numsys.EncodeKPermutation(tb, n, perm).Int64(), "n=%d k=%d rank=%d", n, k, rank)
				if prev != nil {
					assert.True(t, lexLess(prev, perm), "order n=%d k=%d rank=%d", n, k, rank)
				}
				prev = perm
			}
		}
	}
}

// TestFallingFactorialBase_MatchesFactorialBase checks k == n agrees with 4.2.
func TestFallingFactorialBase_MatchesFactorialBase(t *testing.T) {
	tb := rankmath.NewTable()
	for r := int64(0); r < 720; r += 7 {
		assert.Equal(t,
			numsys.DecodePermutation(big.NewInt(r), 6),
			numsys.DecodeKPermutation(tb, big.NewInt(r), 6, 6))
	}
}

// TestCodecs_LargeDomain exercises ranks far beyond int64.
func TestCodecs_LargeDomain(t *testing.T) {
	tb := rankmath.NewTable()

	card, _ := tb.Factorial(40)
	rank := new(big.Int).Sub(card, big.NewInt(1))
	perm, err := numsys.PermutationUnrank(tb, rank, 40)
	require.NoError(t, err)
	assert.Equal(t, 39, perm[0], "last permutation is descending")
	assert.Equal(t, 0, perm[39])
	back, err := numsys.PermutationRank(tb, perm)
	require.NoError(t, err)
	assert.Equal(t, 0, rank.Cmp(back))

	mid := new(big.Int).Quo(tb.NCr(90, 30), big.NewInt(3))
	idx, err := numsys.CombinationUnrank(tb, mid, 90, 30)
	require.NoError(t, err)
	back, err = numsys.CombinationRank(tb, 90, idx)
	require.NoError(t, err)
	assert.Equal(t, 0, mid.Cmp(back))

	mid = new(big.Int).Quo(tb.NPr(60, 25), big.NewInt(7))
	kp, err := numsys.KPermutationUnrank(tb, mid, 60, 25)
	require.NoError(t, err)
	back, err = numsys.KPermutationRank(tb, 60, kp)
	require.NoError(t, err)
	assert.Equal(t, 0, mid.Cmp(back))
}

// TestFacade_Errors asserts sentinel classification of bad inputs.
func TestFacade_Errors(t *testing.T) {
	tb := rankmath.NewTable()

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"perm duplicate", func() error { _, err := numsys.PermutationRank(tb, []int{0, 0}); return err }, numsys.ErrOutOfRange},
		{"perm value", func() error { _, err := numsys.PermutationRank(tb, []int{0, 2}); return err }, numsys.ErrOutOfRange},
		{"perm rank too big", func() error { _, err := numsys.PermutationUnrank(tb, big.NewInt(24), 4); return err }, numsys.ErrOutOfRange},
		{"perm rank negative", func() error { _, err := numsys.PermutationUnrank(tb, big.NewInt(-1), 4); return err }, numsys.ErrOutOfRange},
		{"perm rank nil", func() error { _, err := numsys.PermutationUnrank(tb, nil, 4); return err }, numsys.ErrOutOfRange},
		{"perm n negative", func() error { _, err := numsys.PermutationUnrank(tb, big.NewInt(0), -1); return err }, numsys.ErrInvalidDomainSize},
		{"comb unsorted", func() error { _, err := numsys.CombinationRank(tb, 5, []int{2, 1}); return err }, numsys.ErrOutOfRange},
		{"comb value", func() error { _, err := numsys.CombinationRank(tb, 5, []int{1, 5}); return err }, numsys.ErrOutOfRange},
		{"comb r>n", func() error { _, err := numsys.CombinationUnrank(tb, big.NewInt(0), 3, 4); return err }, numsys.ErrInvalidDomainSize},
		{"comb r<0", func() error { _, err := numsys.CombinationUnrank(tb, big.NewInt(0), 3, -1); return err }, numsys.ErrInvalidDomainSize},
		{"comb rank", func() error { _, err := numsys.CombinationUnrank(tb, big.NewInt(10), 5, 2); return err }, numsys.ErrOutOfRange},
		{"kperm rank", func() error { _, err := numsys.KPermutationUnrank(tb, big.NewInt(1680), 8, 4); return err }, numsys.ErrOutOfRange},
		{"kperm repeat", func() error { _, err := numsys.KPermutationRank(tb, 8, []int{1, 1}); return err }, numsys.ErrOutOfRange},
		{"kperm too long", func() error { _, err := numsys.KPermutationRank(tb, 2, []int{0, 1, 2}); return err }, numsys.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.call(), tc.want)
		})
	}
}

// TestFacade_TrivialDomains covers n ∈ {0,1} and r = 0.
func TestFacade_TrivialDomains(t *testing.T) {
	tb := rankmath.NewTable()

	for _, n := range []int{0, 1} {
		perm, err := numsys.PermutationUnrank(tb, big.NewInt(0), n)
		require.NoError(t, err)
		assert.Len(t, perm, n)
		rank, err := numsys.PermutationRank(tb, perm)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rank.Int64())
	}

	idx, err := numsys.CombinationUnrank(tb, big.NewInt(0), 5, 0)
	require.NoError(t, err)
	assert.Empty(t, idx)
	rank, err := numsys.CombinationRank(tb, 5, []int{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), rank.Int64())
}

// lexLess reports whether a precedes b lexicographically.
func lexLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
