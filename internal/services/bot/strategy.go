package bot

import "github.com/prilectro1098/stone-paper-scissor-game/internal/model"

// Strategy defines how the computer opponent picks its choice.
// The locked choice is player 1's committed choice for the round, or nil
// if nothing has been locked yet.
type Strategy interface {
	Choose(locked *model.Choice) model.Choice
}
