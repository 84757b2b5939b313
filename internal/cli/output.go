package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case MatchState:
		o.printMatchState(v)
	case PlayResult:
		o.printPlayResult(v)
	case History:
		o.printHistory(v)
	case Chart:
		o.printChart(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AuthResult response type (matches API)
type AuthResult struct {
	Player1Name  string `json:"player1_name"`
	Player2Name  string `json:"player2_name"`
	SessionToken string `json:"session_token"`
}

// MatchState response type
type MatchState struct {
	Player1Name  string  `json:"player1_name"`
	Player2Name  string  `json:"player2_name"`
	Score1       int     `json:"score1"`
	Score2       int     `json:"score2"`
	RoundsPlayed int     `json:"rounds_played"`
	RoundCap     int     `json:"round_cap"`
	ChoiceLocked bool    `json:"choice_locked"`
	Completed    bool    `json:"completed"`
	Result       *string `json:"result,omitempty"`
}

// Round response type
type Round struct {
	Round         int    `json:"round"`
	Player1Choice string `json:"player1_choice"`
	Player2Choice string `json:"player2_choice"`
	Winner        string `json:"winner"`
}

// PlayResult response type
type PlayResult struct {
	Round Round      `json:"round"`
	Match MatchState `json:"match"`
}

// History response type
type History struct {
	Rounds []Round `json:"rounds"`
}

// WinCount response type
type WinCount struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

// Chart response type
type Chart struct {
	Counts []WinCount `json:"counts"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Player 1: %s\n", a.Player1Name)
	fmt.Printf("Player 2: %s\n", a.Player2Name)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printMatchState(m MatchState) {
	fmt.Printf("Match: %s vs %s\n", m.Player1Name, m.Player2Name)
	fmt.Printf("Score: %d - %d\n", m.Score1, m.Score2)
	fmt.Printf("Round: %d of %d\n", m.RoundsPlayed, m.RoundCap)
	if m.ChoiceLocked {
		fmt.Println("Player 1 has locked a choice")
	}
	if m.Completed {
		fmt.Println("Match complete")
		if m.Result != nil {
			fmt.Printf("Result: %s\n", *m.Result)
		}
	}
}

func (o *Output) printRound(r Round) {
	fmt.Printf("Round %d: %s vs %s - %s\n", r.Round, r.Player1Choice, r.Player2Choice, r.Winner)
}

func (o *Output) printPlayResult(p PlayResult) {
	o.printRound(p.Round)
	o.printMatchState(p.Match)
}

func (o *Output) printHistory(h History) {
	if len(h.Rounds) == 0 {
		fmt.Println("No rounds played yet")
		return
	}
	for _, r := range h.Rounds {
		o.printRound(r)
	}
}

func (o *Output) printChart(c Chart) {
	if len(c.Counts) == 0 {
		fmt.Println("No wins yet")
		return
	}
	for _, wc := range c.Counts {
		fmt.Printf("%-16s %s %d\n", wc.Name, strings.Repeat("#", wc.Wins), wc.Wins)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
