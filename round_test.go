package main

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestPickTwoDistinctNeverCollides(t *testing.T) {
	rng := testRand(1)

	for _, n := range []int{2, 3, 5, 10} {
		for range 10000 {
			first, second := pickTwoDistinct(rng, n)
			require.NotEqual(t, first, second)
			require.GreaterOrEqual(t, first, 0)
			require.Less(t, first, n)
			require.GreaterOrEqual(t, second, 0)
			require.Less(t, second, n)
		}
	}
}

func TestPickTwoDistinctCoversAllPairs(t *testing.T) {
	rng := testRand(2)

	seen := make(map[[2]int]int)
	for range 10000 {
		first, second := pickTwoDistinct(rng, 3)
		seen[[2]int{first, second}]++
	}

	// All six ordered pairs of distinct positions should show up.
	assert.Len(t, seen, 6)
	for pair, count := range seen {
		assert.Greater(t, count, 1000, "pair %v drawn too rarely", pair)
	}
}

func TestGenerateRound(t *testing.T) {
	cat := newCatalog(map[string]map[string][]string{
		"nba": {
			"2020": {"alpha", "bravo", "charlie"},
		},
	})

	rng := testRand(3)

	for range 1000 {
		rnd, err := generateRound(cat, 5, rng)
		require.NoError(t, err)

		assert.Equal(t, "nba", rnd.Category)
		assert.Equal(t, "2020", rnd.SubKey)
		assert.Contains(t, []string{"alpha", "bravo", "charlie"}, rnd.SharedValue)
		assert.Contains(t, []string{"alpha", "bravo", "charlie"}, rnd.SpecialValue)
		assert.NotEqual(t, rnd.SharedValue, rnd.SpecialValue)
		assert.GreaterOrEqual(t, rnd.SpecialIndex, 0)
		assert.Less(t, rnd.SpecialIndex, 5)
	}
}

func TestGenerateRoundSinglePlayer(t *testing.T) {
	rnd, err := generateRound(defaultCatalog, 1, testRand(4))

	require.NoError(t, err)
	assert.Equal(t, 0, rnd.SpecialIndex)
}

func TestGenerateRoundDuplicateCandidates(t *testing.T) {
	cat := newCatalog(map[string]map[string][]string{
		"nhl": {
			"2021": {"same", "same"},
		},
	})

	// Duplicate strings at distinct positions are legal; the shared and
	// special values may then be equal.
	rnd, err := generateRound(cat, 3, testRand(5))

	require.NoError(t, err)
	assert.Equal(t, "same", rnd.SharedValue)
	assert.Equal(t, "same", rnd.SpecialValue)
}

func TestGenerateRoundFailures(t *testing.T) {
	tests := []struct {
		name         string
		entries      map[string]map[string][]string
		participants int
	}{
		{
			name: "pool with one candidate",
			entries: map[string]map[string][]string{
				"mlb": {"2020": {"only"}},
			},
			participants: 2,
		},
		{
			name:         "empty catalog",
			entries:      map[string]map[string][]string{},
			participants: 2,
		},
		{
			name: "category without seasons",
			entries: map[string]map[string][]string{
				"mlb": {},
			},
			participants: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generateRound(newCatalog(tt.entries), tt.participants, testRand(6))
			require.ErrorIs(t, err, errInsufficientPool)
		})
	}
}

func TestGenerateRoundRejectsNonPositiveCount(t *testing.T) {
	_, err := generateRound(defaultCatalog, 0, testRand(7))
	require.Error(t, err)
}

func TestGenerateRoundSpecialIndexIsUniformish(t *testing.T) {
	rng := testRand(8)
	counts := make([]int, 4)

	for range 20000 {
		rnd, err := generateRound(defaultCatalog, 4, rng)
		require.NoError(t, err)
		counts[rnd.SpecialIndex]++
	}

	for i, c := range counts {
		assert.Greater(t, c, 4000, "position %d picked too rarely", i)
	}
}
