package bot

import (
	"github.com/prilectro1098/stone-paper-scissor-game/internal/dependencies/random"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
)

// EasyStrategy picks uniformly at random, independent of player 1's choice
type EasyStrategy struct {
	random random.Random
}

// NewEasyStrategy creates a new EasyStrategy
func NewEasyStrategy(rnd random.Random) *EasyStrategy {
	return &EasyStrategy{random: rnd}
}

// Choose returns a uniformly random choice
func (s *EasyStrategy) Choose(locked *model.Choice) model.Choice {
	return model.Choice(s.random.Intn(model.NumChoices))
}
