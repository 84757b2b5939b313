package handler

import (
	"encoding/json"
	"net/http"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/api/middleware"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/api/request"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/api/response"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/match"
)

// MatchHandler handles match endpoints
type MatchHandler struct {
	matches *match.Controller
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matches *match.Controller) *MatchHandler {
	return &MatchHandler{
		matches: matches,
	}
}

// modeFromQuery reads the mode query parameter, defaulting to
// player-vs-computer
func modeFromQuery(r *http.Request) (model.Mode, error) {
	mode, err := model.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		return "", NewInvalidRequestError(err.Error())
	}
	return mode, nil
}

// Get handles GET /api/v1/match
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	mode, err := modeFromQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var state response.MatchState
	_ = session.WithMatch(func(m *model.Match) error {
		result, _ := h.matches.Result(m, mode)
		state = response.MatchStateFromModel(m, result)
		return nil
	})

	response.JSON(w, http.StatusOK, state)
}

// Lock handles POST /api/v1/match/lock
func (h *MatchHandler) Lock(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.LockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	choice, err := model.ParseChoice(req.Choice)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := session.WithMatch(func(m *model.Match) error {
		return h.matches.Lock(m, choice)
	}); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Play handles POST /api/v1/match/play
func (h *MatchHandler) Play(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	mode, err := model.ParseMode(req.Mode)
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}
	difficulty, err := model.ParseDifficulty(req.Difficulty)
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	var player2Choice *model.Choice
	if mode == model.ModePlayer {
		c, err := model.ParseChoice(req.Player2Choice)
		if err != nil {
			WriteError(w, err)
			return
		}
		player2Choice = &c
	}

	var (
		round *model.RoundRecord
		state response.MatchState
	)
	if err := session.WithMatch(func(m *model.Match) error {
		var err error
		round, err = h.matches.Play(m, mode, difficulty, player2Choice)
		if err != nil {
			return err
		}
		result, _ := h.matches.Result(m, mode)
		state = response.MatchStateFromModel(m, result)
		return nil
	}); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, struct {
		Round response.Round      `json:"round"`
		Match response.MatchState `json:"match"`
	}{
		Round: response.RoundFromModel(*round),
		Match: state,
	})
}

// Reset handles POST /api/v1/match/reset
func (h *MatchHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.restart(w, r, h.matches.Reset)
}

// Rematch handles POST /api/v1/match/rematch
func (h *MatchHandler) Rematch(w http.ResponseWriter, r *http.Request) {
	h.restart(w, r, h.matches.Rematch)
}

func (h *MatchHandler) restart(w http.ResponseWriter, r *http.Request, fn func(*model.Match)) {
	session := middleware.MustGetSession(r.Context())

	var state response.MatchState
	_ = session.WithMatch(func(m *model.Match) error {
		fn(m)
		state = response.MatchStateFromModel(m, "")
		return nil
	})

	response.JSON(w, http.StatusOK, state)
}

// History handles GET /api/v1/match/history
func (h *MatchHandler) History(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var history response.HistoryResponse
	_ = session.WithMatch(func(m *model.Match) error {
		history = response.HistoryFromModel(m.History)
		return nil
	})

	response.JSON(w, http.StatusOK, history)
}

// Chart handles GET /api/v1/match/chart
func (h *MatchHandler) Chart(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var chart response.ChartResponse
	_ = session.WithMatch(func(m *model.Match) error {
		chart = response.ChartFromCounts(h.matches.WinCounts(m))
		return nil
	})

	response.JSON(w, http.StatusOK, chart)
}
