package model

import (
	"fmt"
	"time"
)

// RoundCap is the fixed number of rounds in a match
const RoundCap = 5

// WinnerDraw is the winner string recorded for drawn rounds and tied matches
const WinnerDraw = "Draw"

// ComputerName is the opponent name used in player-vs-computer mode
const ComputerName = "Computer"

// Mode selects the opponent for player 2's slot.
// It is read fresh on every interaction; switching mode mid-match does not
// reset the match.
type Mode string

const (
	ModeComputer Mode = "pvc"
	ModePlayer   Mode = "pvp"
)

// ParseMode parses a mode string, defaulting to player-vs-computer
// when empty
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeComputer, "":
		return ModeComputer, nil
	case ModePlayer:
		return ModePlayer, nil
	default:
		return "", fmt.Errorf("unknown mode: %q", s)
	}
}

// Difficulty selects the computer opponent's strategy
type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// ParseDifficulty parses a difficulty string, defaulting to easy
// when empty
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, "":
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty: %q", s)
	}
}

// RoundRecord is an immutable record of one resolved round.
// Winner is player 1's name, the opponent's name, or WinnerDraw.
type RoundRecord struct {
	Round         int
	Player1Choice Choice
	Player2Choice Choice
	Winner        string
}

// Match holds the mutable state of a five-round match.
// Invariants: RoundsPlayed == len(History); Completed iff RoundsPlayed >= RoundCap.
type Match struct {
	Player1Name string
	Player2Name string

	Score1       int
	Score2       int
	RoundsPlayed int
	History      []RoundRecord

	// LockedChoice is player 1's committed choice, nil until locked.
	// Irreversible until the round resolves.
	LockedChoice *Choice

	Completed bool

	// RoundStartedAt marks when the current round's view was entered.
	// Rounds resolving more than the time limit after it are a timeout
	// loss for player 1.
	RoundStartedAt time.Time
}

// OpponentName returns the name shown for player 2's slot under the given mode
func (m *Match) OpponentName(mode Mode) string {
	if mode == ModePlayer {
		return m.Player2Name
	}
	return ComputerName
}

// HasLock reports whether player 1 has committed a choice this round
func (m *Match) HasLock() bool {
	return m.LockedChoice != nil
}
