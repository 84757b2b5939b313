package bot

import (
	"fmt"
	"log/slog"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/dependencies/random"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
)

// Service resolves a difficulty setting to a strategy and produces the
// computer opponent's choice for a round
type Service struct {
	strategies map[model.Difficulty]Strategy
	logger     *slog.Logger
}

// NewService creates a bot Service with the given strategies
func NewService(strategies map[model.Difficulty]Strategy, logger *slog.Logger) *Service {
	return &Service{
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// DefaultStrategies returns the standard easy/hard strategy set
func DefaultStrategies(rnd random.Random) map[model.Difficulty]Strategy {
	return map[model.Difficulty]Strategy{
		model.DifficultyEasy: NewEasyStrategy(rnd),
		model.DifficultyHard: NewHardStrategy(rnd),
	}
}

// Choose returns the computer's choice for the given difficulty.
// Difficulty is read fresh on every call; there is no per-match bot state.
func (s *Service) Choose(difficulty model.Difficulty, locked *model.Choice) (model.Choice, error) {
	strategy, ok := s.strategies[difficulty]
	if !ok {
		return 0, fmt.Errorf("unknown difficulty: %s", difficulty)
	}

	choice := strategy.Choose(locked)
	s.logger.Debug("computer chose",
		slog.String("difficulty", string(difficulty)),
		slog.String("choice", choice.String()),
	)
	return choice, nil
}
