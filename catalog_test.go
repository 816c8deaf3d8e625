package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogSatisfiesPoolContract(t *testing.T) {
	categories := defaultCatalog.Categories()
	require.NotEmpty(t, categories)

	// Every reachable (league, season) pair must hold at least two names,
	// or round generation could never pick a distinct pair from it.
	for _, category := range categories {
		subKeys := defaultCatalog.SubKeys(category)
		require.NotEmpty(t, subKeys, "league %q has no seasons", category)

		for _, subKey := range subKeys {
			pool := defaultCatalog.Candidates(category, subKey)
			assert.GreaterOrEqual(t, len(pool), 2, "%s/%s", category, subKey)
		}
	}
}

func TestCatalogAccessors(t *testing.T) {
	cat := newCatalog(map[string]map[string][]string{
		"b-league": {"2021": {"one", "two"}},
		"a-league": {"2020": {"x", "y"}, "2019": {"p", "q"}},
	})

	assert.Equal(t, []string{"a-league", "b-league"}, cat.Categories())
	assert.Equal(t, []string{"2019", "2020"}, cat.SubKeys("a-league"))
	assert.Equal(t, []string{"one", "two"}, cat.Candidates("b-league", "2021"))

	assert.Empty(t, cat.SubKeys("missing"))
	assert.Empty(t, cat.Candidates("a-league", "missing"))
}
