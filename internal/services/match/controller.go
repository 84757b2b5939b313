package match

import (
	"log/slog"
	"time"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/dependencies/clock"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/bot"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/rules"
)

// Config holds configuration for the match controller
type Config struct {
	// RoundTimeLimit is how long player 1 has to play a round after
	// entering the round view before the opponent is awarded the point
	RoundTimeLimit time.Duration
}

// DefaultConfig returns default match configuration
func DefaultConfig() Config {
	return Config{
		RoundTimeLimit: 10 * time.Second,
	}
}

// WinCount is one bar of the win/loss distribution chart.
// Draws are excluded.
type WinCount struct {
	Name string
	Wins int
}

// Controller manages match state: locking, round resolution, the round
// cap, and rematch/reset
type Controller struct {
	bots   *bot.Service
	clock  clock.Clock
	cfg    Config
	logger *slog.Logger
}

// NewController creates a new match Controller
func NewController(bots *bot.Service, clk clock.Clock, cfg Config, logger *slog.Logger) *Controller {
	if cfg.RoundTimeLimit == 0 {
		cfg = DefaultConfig()
	}
	return &Controller{
		bots:   bots,
		clock:  clk,
		cfg:    cfg,
		logger: logger,
	}
}

// NewMatch creates a fresh match between the two named players
func (c *Controller) NewMatch(player1Name, player2Name string) *model.Match {
	return &model.Match{
		Player1Name:    player1Name,
		Player2Name:    player2Name,
		History:        []model.RoundRecord{},
		RoundStartedAt: c.clock.Now(),
	}
}

// BeginRound marks the round view as (re)entered, restarting the round
// timer. Called whenever the match state is rendered or fetched.
func (c *Controller) BeginRound(m *model.Match) {
	m.RoundStartedAt = c.clock.Now()
}

// Lock commits player 1's choice for the current round.
// The lock is irreversible until the round resolves.
func (c *Controller) Lock(m *model.Match, choice model.Choice) error {
	if m.Completed {
		return model.ErrMatchComplete
	}
	if !choice.Valid() {
		return model.ErrUnknownChoice
	}
	if m.HasLock() {
		return model.ErrChoiceLocked
	}
	m.LockedChoice = &choice
	return nil
}

// Play resolves the current round. In player-vs-player mode player2Choice
// supplies the opponent's pick; in computer mode the bot service picks per
// the difficulty (read fresh on every call).
//
// If more than the round time limit has passed since the round view was
// entered, the round resolves as a timeout: the opponent scores regardless
// of the choices, which are still recorded in the history entry.
func (c *Controller) Play(m *model.Match, mode model.Mode, difficulty model.Difficulty, player2Choice *model.Choice) (*model.RoundRecord, error) {
	if m.Completed {
		return nil, model.ErrMatchComplete
	}
	if !m.HasLock() {
		return nil, model.ErrNotLocked
	}

	var opponentChoice model.Choice
	if mode == model.ModePlayer {
		if player2Choice == nil || !player2Choice.Valid() {
			return nil, model.ErrUnknownChoice
		}
		opponentChoice = *player2Choice
	} else {
		choice, err := c.bots.Choose(difficulty, m.LockedChoice)
		if err != nil {
			return nil, err
		}
		opponentChoice = choice
	}

	opponentName := m.OpponentName(mode)
	now := c.clock.Now()

	rec := model.RoundRecord{
		Round:         m.RoundsPlayed + 1,
		Player1Choice: *m.LockedChoice,
		Player2Choice: opponentChoice,
	}

	timedOut := now.Sub(m.RoundStartedAt) > c.cfg.RoundTimeLimit
	if timedOut {
		// Timeout penalty: opponent point, no dominance evaluation
		rec.Winner = opponentName
		m.Score2++
	} else {
		switch rules.Resolve(rec.Player1Choice, rec.Player2Choice) {
		case rules.Player1Wins:
			rec.Winner = m.Player1Name
			m.Score1++
		case rules.Player2Wins:
			rec.Winner = opponentName
			m.Score2++
		default:
			rec.Winner = model.WinnerDraw
		}
	}

	m.History = append(m.History, rec)
	m.RoundsPlayed++
	m.LockedChoice = nil
	m.RoundStartedAt = now
	if m.RoundsPlayed >= model.RoundCap {
		m.Completed = true
	}

	c.logger.Info("round resolved",
		slog.Int("round", rec.Round),
		slog.String("player1_choice", rec.Player1Choice.String()),
		slog.String("player2_choice", rec.Player2Choice.String()),
		slog.String("winner", rec.Winner),
		slog.Bool("timeout", timedOut),
		slog.Bool("completed", m.Completed),
	)

	return &rec, nil
}

// Reset fully reinitializes the match state without touching login status
// or the credential store. Invoking it repeatedly is idempotent.
func (c *Controller) Reset(m *model.Match) {
	m.Score1 = 0
	m.Score2 = 0
	m.RoundsPlayed = 0
	m.History = []model.RoundRecord{}
	m.LockedChoice = nil
	m.Completed = false
	m.RoundStartedAt = c.clock.Now()
}

// Rematch starts a new match between the same players. It is the same
// full reinitialization as Reset.
func (c *Controller) Rematch(m *model.Match) {
	c.Reset(m)
}

// Result returns the overall winner's name once the match is complete,
// or model.WinnerDraw for a tie. The second return is false while the
// match is still in progress. There are no tiebreaker rounds.
func (c *Controller) Result(m *model.Match, mode model.Mode) (string, bool) {
	if !m.Completed {
		return "", false
	}
	switch {
	case m.Score1 > m.Score2:
		return m.Player1Name, true
	case m.Score2 > m.Score1:
		return m.OpponentName(mode), true
	default:
		return model.WinnerDraw, true
	}
}

// WinCounts returns per-winner round counts in order of first win,
// excluding draws. This backs the win/loss distribution chart.
func (c *Controller) WinCounts(m *model.Match) []WinCount {
	var counts []WinCount
	index := make(map[string]int)

	for _, rec := range m.History {
		if rec.Winner == model.WinnerDraw {
			continue
		}
		if i, ok := index[rec.Winner]; ok {
			counts[i].Wins++
			continue
		}
		index[rec.Winner] = len(counts)
		counts = append(counts, WinCount{Name: rec.Winner, Wins: 1})
	}

	return counts
}

// Interface for dependency injection
type ControllerInterface interface {
	NewMatch(player1Name, player2Name string) *model.Match
	BeginRound(m *model.Match)
	Lock(m *model.Match, choice model.Choice) error
	Play(m *model.Match, mode model.Mode, difficulty model.Difficulty, player2Choice *model.Choice) (*model.RoundRecord, error)
	Reset(m *model.Match)
	Rematch(m *model.Match)
	Result(m *model.Match, mode model.Mode) (string, bool)
	WinCounts(m *model.Match) []WinCount
}

var _ ControllerInterface = (*Controller)(nil)
