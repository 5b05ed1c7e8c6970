// SPDX-License-Identifier: MIT

package permute_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numarray/permute"
)

func isBijection(p []int, n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func TestUniquePermutationIsBijection(t *testing.T) {
	g := permute.New(123)
	for _, n := range []int{1, 2, 10, 257} {
		assert.True(t, isBijection(g.UniquePermutation(n), n), "n=%d", n)
	}
	assert.Empty(t, g.UniquePermutation(0))
	assert.Empty(t, g.UniquePermutation(-3))
}

func TestSeedDeterminism(t *testing.T) {
	a := permute.New(42).UniquePermutation(64)
	b := permute.New(42).UniquePermutation(64)
	c := permute.New(43).UniquePermutation(64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestZeroSeedUsesDefault(t *testing.T) {
	g := permute.New(0)
	assert.Equal(t, permute.DefaultSeed, g.Seed())
	assert.Equal(t, permute.New(permute.DefaultSeed).UniquePermutation(16), g.UniquePermutation(16))
}

func TestDeriveStreams(t *testing.T) {
	parent := permute.New(5)
	c1 := parent.Derive(1)
	c2 := parent.Derive(1)
	assert.NotEqual(t, c1.Seed(), c2.Seed(), "the parent advances between derivations")

	again := permute.New(5).Derive(1)
	assert.Equal(t, c1.Seed(), again.Seed())
	assert.True(t, isBijection(c1.UniquePermutation(20), 20))
}

func TestRange(t *testing.T) {
	_, err := permute.Range(-1, nil)
	require.ErrorIs(t, err, permute.ErrNegativeLength)

	p, err := permute.Range(0, nil)
	require.NoError(t, err)
	assert.Empty(t, p)

	p, err = permute.Range(30, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	assert.True(t, isBijection(p, 30))

	q, err := permute.Range(30, nil)
	require.NoError(t, err)
	r, err := permute.Range(30, rand.New(rand.NewSource(permute.DefaultSeed)))
	require.NoError(t, err)
	assert.Equal(t, q, r)
}

func TestShuffleKeepsElements(t *testing.T) {
	a := []int{4, 4, 1, 9}
	permute.Shuffle(a, rand.New(rand.NewSource(3)))
	assert.ElementsMatch(t, []int{4, 4, 1, 9}, a)

	one := []int{7}
	permute.Shuffle(one, nil)
	assert.Equal(t, []int{7}, one)
}
