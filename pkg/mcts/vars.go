package mcts

import (
	"math/rand/v2"
	"time"
)

// Rollout rewards, from the point of view of the optimized player.
// Losses weigh more than wins so the evaluator plays safe.
const (
	RewardWin        = 1.0
	RewardLoss       = -2.0
	RewardDraw       = -1.0
	RewardIncomplete = 0.0
)

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for the random number generators,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

// New random generator seeded by SeedGeneratorFn, stream picks one of
// the independent sequences for that seed
func NewRand(stream int) *rand.Rand {
	seed := uint64(SeedGeneratorFn())
	return rand.New(rand.NewPCG(seed, uint64(stream)))
}
