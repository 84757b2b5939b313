package bot

import (
	"github.com/prilectro1098/stone-paper-scissor-game/internal/dependencies/random"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
)

// HardStrategy deterministically counters player 1's locked choice
// (Stone→Paper, Paper→Scissor, Scissor→Stone). It is a fixed counter, not
// adaptive: whenever a lock exists the computer wins the round. With no
// locked choice it falls back to uniform random.
type HardStrategy struct {
	random random.Random
}

// NewHardStrategy creates a new HardStrategy
func NewHardStrategy(rnd random.Random) *HardStrategy {
	return &HardStrategy{random: rnd}
}

// Choose returns the counter of the locked choice, or a random choice if
// nothing is locked
func (s *HardStrategy) Choose(locked *model.Choice) model.Choice {
	if locked == nil {
		return model.Choice(s.random.Intn(model.NumChoices))
	}
	return locked.Counter()
}
