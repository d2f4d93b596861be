package ranked_test

import (
	"fmt"
	"math/big"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rankspace/ranked"
)

// TestMap_Colors maps 2-combinations onto named elements.
func TestMap_Colors(t *testing.T) {
	g, err := ranked.Combinations(3, 2)
	require.NoError(t, err)
	m, err := ranked.Map(g, []string{"Red", "Green", "Blue"})
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Red", "Green"},
		{"Red", "Blue"},
		{"Green", "Blue"},
	}, slices.Collect(m.All()))
	assert.Equal(t, g.Cardinality(), m.Cardinality())

	got, err := m.At(big.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"Green", "Blue"}, got)

	_, err = m.At(big.NewInt(3))
	assert.ErrorIs(t, err, ranked.ErrOutOfRange)
}

// TestMap_SourceIsCopied protects the mapping from later source edits.
func TestMap_SourceIsCopied(t *testing.T) {
	src := []string{"a", "b"}
	g, err := ranked.Permutations(2)
	require.NoError(t, err)
	m, err := ranked.Map(g, src)
	require.NoError(t, err)

	src[0] = "zzz"
	assert.Equal(t, [][]string{{"a", "b"}, {"b", "a"}}, slices.Collect(m.All()))
}

// TestMap_DuplicateValues keeps positional identity.
func TestMap_DuplicateValues(t *testing.T) {
	g, err := ranked.Combinations(3, 2)
	require.NoError(t, err)
	m, err := ranked.Map(g, []int{7, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{7, 7}, {7, 8}, {7, 8}}, slices.Collect(m.All()))
}

// TestMap_LengthMismatch rejects a source of the wrong size.
func TestMap_LengthMismatch(t *testing.T) {
	g, err := ranked.Combinations(3, 2)
	require.NoError(t, err)
	_, err = ranked.Map(g, []string{"a", "b"})
	assert.ErrorIs(t, err, ranked.ErrInvalidDomainSize)
}

// TestMap_Stepped mirrors the generator's stepped positions.
func TestMap_Stepped(t *testing.T) {
	g, err := ranked.RepetitivePermutations(2, 3)
	require.NoError(t, err)
	m, err := ranked.Map(g, []byte("01"))
	require.NoError(t, err)

	seq, err := ranked.SteppedInt[[]byte](m, 3, 1)
	require.NoError(t, err)
	var words []string
	for w := range seq {
		words = append(words, string(w))
	}
	assert.Equal(t, []string{"001", "100", "111"}, words)
}

// TestTransform projects a composite to strings.
func TestTransform(t *testing.T) {
	p := ranked.CartesianProduct([]int{1, 2}, []int{3, 4})
	s := ranked.Transform[[]int, string](p, func(e []int) string { return fmt.Sprint(e) })

	assert.Equal(t, []string{"[1 3]", "[1 4]", "[2 3]", "[2 4]"}, slices.Collect(s.All()))

	got, err := s.At(big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, "[1 4]", got)

	// transformed universes compose like any other slot
	both := ranked.Product[string](s, ranked.Transform[[]int, string](p, func(e []int) string {
		return strings.Repeat("*", e[0])
	}))
	assert.Equal(t, int64(16), both.Cardinality().Int64())
	last, err := both.At(big.NewInt(15))
	require.NoError(t, err)
	assert.Equal(t, []string{"[2 4]", "**"}, last)
}
