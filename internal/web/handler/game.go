package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/auth"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/match"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/web/middleware"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/web/templates"
)

// GameHandler handles the game page and actions
type GameHandler struct {
	matches *match.Controller
	logger  *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(matches *match.Controller, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		matches: matches,
		logger:  logger,
	}
}

// settings reads mode and difficulty from the request. They are read
// fresh on every interaction; switching either mid-match does not reset
// the match. Unknown values fall back to the defaults.
func settings(r *http.Request) (model.Mode, model.Difficulty) {
	get := r.URL.Query().Get
	if r.Method == http.MethodPost {
		get = r.FormValue
	}
	mode, err := model.ParseMode(get("mode"))
	if err != nil {
		mode = model.ModeComputer
	}
	difficulty, err := model.ParseDifficulty(get("difficulty"))
	if err != nil {
		difficulty = model.DifficultyEasy
	}
	return mode, difficulty
}

func gameURL(mode model.Mode, difficulty model.Difficulty) string {
	q := url.Values{}
	q.Set("mode", string(mode))
	q.Set("difficulty", string(difficulty))
	return "/game?" + q.Encode()
}

// View handles GET /game
func (h *GameHandler) View(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	mode, difficulty := settings(r)

	var data templates.GameData
	_ = session.WithMatch(func(m *model.Match) error {
		// Entering the pick view starts the round timer
		if !m.Completed && !m.HasLock() {
			h.matches.BeginRound(m)
		}
		data = h.gameData(session, m, mode, difficulty)
		return nil
	})
	data.Flash = middleware.GetFlash(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Game(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Lock handles POST /game/lock
func (h *GameHandler) Lock(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	mode, difficulty := settings(r)

	choice, err := model.ParseChoice(r.FormValue("choice"))
	if err != nil {
		middleware.SetFlash(w, "error", "Choice must be Stone, Paper or Scissor")
		http.Redirect(w, r, gameURL(mode, difficulty), http.StatusSeeOther)
		return
	}

	if err := session.WithMatch(func(m *model.Match) error {
		return h.matches.Lock(m, choice)
	}); err != nil {
		middleware.SetFlash(w, "error", err.Error())
	}

	http.Redirect(w, r, gameURL(mode, difficulty), http.StatusSeeOther)
}

// Play handles POST /game/play
func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	mode, difficulty := settings(r)

	var player2Choice *model.Choice
	if mode == model.ModePlayer {
		c, err := model.ParseChoice(r.FormValue("player2_choice"))
		if err != nil {
			middleware.SetFlash(w, "error", "Choice must be Stone, Paper or Scissor")
			http.Redirect(w, r, gameURL(mode, difficulty), http.StatusSeeOther)
			return
		}
		player2Choice = &c
	}

	if err := session.WithMatch(func(m *model.Match) error {
		_, err := h.matches.Play(m, mode, difficulty, player2Choice)
		return err
	}); err != nil {
		middleware.SetFlash(w, "error", err.Error())
	}

	http.Redirect(w, r, gameURL(mode, difficulty), http.StatusSeeOther)
}

// Reset handles POST /game/reset
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.restart(w, r, h.matches.Reset, "Match reset")
}

// Rematch handles POST /game/rematch
func (h *GameHandler) Rematch(w http.ResponseWriter, r *http.Request) {
	h.restart(w, r, h.matches.Rematch, "Rematch started")
}

func (h *GameHandler) restart(w http.ResponseWriter, r *http.Request, fn func(*model.Match), message string) {
	session := middleware.GetSession(r.Context())
	mode, difficulty := settings(r)

	_ = session.WithMatch(func(m *model.Match) error {
		fn(m)
		return nil
	})

	middleware.SetFlash(w, "info", message)
	http.Redirect(w, r, gameURL(mode, difficulty), http.StatusSeeOther)
}

func (h *GameHandler) gameData(session *auth.Session, m *model.Match, mode model.Mode, difficulty model.Difficulty) templates.GameData {
	history := make([]templates.Round, len(m.History))
	for i, rec := range m.History {
		history[i] = templates.Round{
			Round:         rec.Round,
			Player1Choice: rec.Player1Choice.String(),
			Player2Choice: rec.Player2Choice.String(),
			Winner:        rec.Winner,
		}
	}

	result, _ := h.matches.Result(m, mode)

	return templates.GameData{
		PageData: templates.PageData{
			Title: "Game",
		},
		Player1Name:  m.Player1Name,
		OpponentName: m.OpponentName(mode),
		Mode:         string(mode),
		Difficulty:   string(difficulty),
		Choices:      []string{"Stone", "Paper", "Scissor"},
		Locked:       m.HasLock(),
		Completed:    m.Completed,
		Score1:       m.Score1,
		Score2:       m.Score2,
		RoundsPlayed: m.RoundsPlayed,
		RoundCap:     model.RoundCap,
		Result:       result,
		History:      history,
		Chart:        winBars(h.matches.WinCounts(m)),
	}
}

// winBars scales win counts to bar widths relative to the widest bar
func winBars(counts []match.WinCount) []templates.WinBar {
	maxWins := 0
	for _, c := range counts {
		if c.Wins > maxWins {
			maxWins = c.Wins
		}
	}

	bars := make([]templates.WinBar, len(counts))
	for i, c := range counts {
		width := 0
		if maxWins > 0 {
			width = c.Wins * 100 / maxWins
		}
		bars[i] = templates.WinBar{Name: c.Name, Wins: c.Wins, Width: width}
	}
	return bars
}
