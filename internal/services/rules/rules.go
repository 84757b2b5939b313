package rules

import "github.com/prilectro1098/stone-paper-scissor-game/internal/model"

// Outcome is the result of resolving a single round
type Outcome int

const (
	Draw Outcome = iota
	Player1Wins
	Player2Wins
)

// String returns a short name for the outcome
func (o Outcome) String() string {
	switch o {
	case Player1Wins:
		return "player1"
	case Player2Wins:
		return "player2"
	default:
		return "draw"
	}
}

// Resolve applies the cyclic dominance rule to a pair of choices.
//
// With Stone=0, Paper=1, Scissor=2, let d = (p1 - p2) mod 3:
// d == 0 is a draw, d == 1 means player 1 wins, d == 2 means the
// opponent wins. This encodes Stone beats Scissor beats Paper beats Stone.
func Resolve(p1, p2 model.Choice) Outcome {
	d := (int(p1) - int(p2) + model.NumChoices) % model.NumChoices
	switch d {
	case 0:
		return Draw
	case 1:
		return Player1Wins
	default:
		return Player2Wins
	}
}
