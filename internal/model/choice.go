package model

import "fmt"

// Choice is one of the three throwable hands, ordered so that the cyclic
// dominance rule reduces to modular arithmetic: Stone=0, Paper=1, Scissor=2.
type Choice int

const (
	Stone Choice = iota
	Paper
	Scissor
)

// NumChoices is the size of the choice enumeration
const NumChoices = 3

var choiceNames = [NumChoices]string{"Stone", "Paper", "Scissor"}

// String returns the display name of the choice
func (c Choice) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Choice(%d)", int(c))
	}
	return choiceNames[c]
}

// Valid reports whether c is one of the three defined choices
func (c Choice) Valid() bool {
	return c >= Stone && c <= Scissor
}

// Counter returns the choice that beats c
// (Stone→Paper, Paper→Scissor, Scissor→Stone)
func (c Choice) Counter() Choice {
	return (c + 1) % NumChoices
}

// ParseChoice parses a display name into a Choice.
// Matching is exact: "Stone", "Paper", "Scissor".
func ParseChoice(s string) (Choice, error) {
	for i, name := range choiceNames {
		if s == name {
			return Choice(i), nil
		}
	}
	return 0, ErrUnknownChoice
}
