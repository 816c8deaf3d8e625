/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"math/rand/v2"
)

var errInsufficientPool = errors.New("not enough candidates for the chosen league and season")

// round is the result of one draw: everyone in the room is told SharedValue,
// except for the participant at SpecialIndex, who is told SpecialValue.
// Rounds are independent; nothing here is retained between draws.
type round struct {
	Category     string
	SubKey       string
	SharedValue  string
	SpecialValue string
	SpecialIndex int
}

// pickTwoDistinct returns two positionally distinct indices into a pool of
// length n, uniform over all ordered pairs of distinct positions. The second
// draw is over n-1 slots and shifted past the first, so the pair can never
// collide. n must be >= 2.
func pickTwoDistinct(rng *rand.Rand, n int) (first, second int) {
	first = rng.IntN(n)
	second = rng.IntN(n - 1)
	if second >= first {
		second++
	}
	return first, second
}

// generateRound draws a league, a season, a shared and a special name, and
// the participant position that receives the special name. It reads nothing
// but the catalog and the supplied randomness source.
func generateRound(cat *Catalog, participants int, rng *rand.Rand) (round, error) {
	if participants < 1 {
		return round{}, errors.New("participant count must be positive")
	}

	categories := cat.Categories()
	if len(categories) == 0 {
		return round{}, errInsufficientPool
	}
	category := categories[rng.IntN(len(categories))]

	subKeys := cat.SubKeys(category)
	if len(subKeys) == 0 {
		return round{}, errInsufficientPool
	}
	subKey := subKeys[rng.IntN(len(subKeys))]

	pool := cat.Candidates(category, subKey)
	if len(pool) < 2 {
		return round{}, errInsufficientPool
	}

	shared, special := pickTwoDistinct(rng, len(pool))

	return round{
		Category:     category,
		SubKey:       subKey,
		SharedValue:  pool[shared],
		SpecialValue: pool[special],
		SpecialIndex: rng.IntN(participants),
	}, nil
}
