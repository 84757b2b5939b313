package response

import (
	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/auth"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/match"
)

// AuthResponse is the response for the combined login endpoint
type AuthResponse struct {
	Player1Name  string `json:"player1_name"`
	Player2Name  string `json:"player2_name"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player1Name:  s.Player1Name,
		Player2Name:  s.Player2Name,
		SessionToken: s.Token,
	}
}

// Round represents a resolved round in API responses
type Round struct {
	Round         int    `json:"round"`
	Player1Choice string `json:"player1_choice"`
	Player2Choice string `json:"player2_choice"`
	Winner        string `json:"winner"`
}

// RoundFromModel converts a model.RoundRecord
func RoundFromModel(r model.RoundRecord) Round {
	return Round{
		Round:         r.Round,
		Player1Choice: r.Player1Choice.String(),
		Player2Choice: r.Player2Choice.String(),
		Winner:        r.Winner,
	}
}

// MatchState represents the current match state.
// The locked choice's value is deliberately omitted so Player 2 cannot
// read it from the API; only the fact that a lock exists is exposed.
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

// MatchStateFromModel converts a model.Match to a MatchState
func MatchStateFromModel(m *model.Match, result string) MatchState {
	var resultResp *string
	if m.Completed {
		resultResp = &result
	}
	return MatchState{
		Player1Name:  m.Player1Name,
		Player2Name:  m.Player2Name,
		Score1:       m.Score1,
		Score2:       m.Score2,
		RoundsPlayed: m.RoundsPlayed,
		RoundCap:     model.RoundCap,
		ChoiceLocked: m.HasLock(),
		Completed:    m.Completed,
		Result:       resultResp,
	}
}

// HistoryResponse lists the resolved rounds of the current match
type HistoryResponse struct {
	Rounds []Round `json:"rounds"`
}

// HistoryFromModel converts a match history
func HistoryFromModel(history []model.RoundRecord) HistoryResponse {
	rounds := make([]Round, len(history))
	for i, r := range history {
		rounds[i] = RoundFromModel(r)
	}
	return HistoryResponse{Rounds: rounds}
}

// WinCount represents one bar of the win chart
type WinCount struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

// ChartResponse holds per-player win counts, draws excluded
type ChartResponse struct {
	Counts []WinCount `json:"counts"`
}

// ChartFromCounts converts match.WinCount values
func ChartFromCounts(counts []match.WinCount) ChartResponse {
	resp := make([]WinCount, len(counts))
	for i, c := range counts {
		resp[i] = WinCount{Name: c.Name, Wins: c.Wins}
	}
	return ChartResponse{Counts: resp}
}
