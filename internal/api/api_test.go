package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/api"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/api/apierr"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/api/response"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/factory"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{
		StorageType: factory.StorageTypeMemory,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		AuthService:     app.AuthService,
		MatchController: app.MatchController,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// registerUser registers an account directly through the API
func (ts *testServer) registerUser(t *testing.T, username, password string) {
	t.Helper()
	body := map[string]string{"username": username, "password": password}
	rr := ts.request(http.MethodPost, "/api/v1/accounts/register", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)
}

// loginPair registers two accounts and logs them in together,
// returning the session token
func (ts *testServer) loginPair(t *testing.T) string {
	t.Helper()
	ts.registerUser(t, "alice", "secret1")
	ts.registerUser(t, "bob", "secret2")

	body := map[string]string{
		"player1_username": "alice",
		"player1_password": "secret1",
		"player2_username": "bob",
		"player2_password": "secret2",
	}
	rr := ts.request(http.MethodPost, "/api/v1/accounts/login", body, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionToken)
	return resp.SessionToken
}

// lockAndPlay plays one player-vs-player round
func (ts *testServer) lockAndPlay(t *testing.T, token, choice1, choice2 string) {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/match/lock", map[string]string{"choice": choice1}, token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	body := map[string]string{"mode": "pvp", "player2_choice": choice2}
	rr = ts.request(http.MethodPost, "/api/v1/match/play", body, token)
	require.Equal(t, http.StatusOK, rr.Code)
}

// errorCode extracts the error code from an error response body
func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"username": "alice", "password": "secret1"}
	rr := ts.request(http.MethodPost, "/api/v1/accounts/register", body, "")

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "alice")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "alice", "secret1")

	body := map[string]string{"username": "alice", "password": "different"}
	rr := ts.request(http.MethodPost, "/api/v1/accounts/register", body, "")

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeUsernameExists, errorCode(t, rr))
}

func TestRegisterMissingFields(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/accounts/register", map[string]string{"password": "x"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/accounts/register", map[string]string{"username": "x"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))
}

func TestLoginBoth(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "alice", "secret1")
	ts.registerUser(t, "bob", "secret2")

	body := map[string]string{
		"player1_username": "alice",
		"player1_password": "secret1",
		"player2_username": "bob",
		"player2_password": "secret2",
	}
	rr := ts.request(http.MethodPost, "/api/v1/accounts/login", body, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Player1Name)
	assert.Equal(t, "bob", resp.Player2Name)
	assert.NotEmpty(t, resp.SessionToken)
}

func TestLoginAllOrNothing(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "alice", "secret1")
	ts.registerUser(t, "bob", "secret2")

	cases := []struct {
		name string
		body map[string]string
	}{
		{"player1 wrong password", map[string]string{
			"player1_username": "alice", "player1_password": "wrong",
			"player2_username": "bob", "player2_password": "secret2",
		}},
		{"player2 wrong password", map[string]string{
			"player1_username": "alice", "player1_password": "secret1",
			"player2_username": "bob", "player2_password": "wrong",
		}},
		{"player2 unknown user", map[string]string{
			"player1_username": "alice", "player1_password": "secret1",
			"player2_username": "carol", "player2_password": "secret2",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/accounts/login", tc.body, "")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, apierr.CodeInvalidCredentials, errorCode(t, rr))
		})
	}
}

func TestLoginExactMatchCredentials(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "alice", "secret1")
	ts.registerUser(t, "bob", "secret2")

	// Case and whitespace variants must not match
	body := map[string]string{
		"player1_username": "Alice",
		"player1_password": "secret1",
		"player2_username": "bob",
		"player2_password": "secret2",
	}
	rr := ts.request(http.MethodPost, "/api/v1/accounts/login", body, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	body["player1_username"] = "alice"
	body["player1_password"] = " secret1"
	rr = ts.request(http.MethodPost, "/api/v1/accounts/login", body, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	rr := ts.request(http.MethodGet, "/api/v1/session", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Player1Name)
	assert.Equal(t, "bob", resp.Player2Name)

	// Logout invalidates the session
	rr = ts.request(http.MethodPost, "/api/v1/session/logout", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/session", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/session"},
		{http.MethodGet, "/api/v1/match"},
		{http.MethodPost, "/api/v1/match/lock"},
		{http.MethodPost, "/api/v1/match/play"},
		{http.MethodGet, "/api/v1/match/history"},
	}

	for _, p := range paths {
		rr := ts.request(p.method, p.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", p.method, p.path)
	}
}

func TestGetFreshMatch(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	rr := ts.request(http.MethodGet, "/api/v1/match", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var state response.MatchState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, "alice", state.Player1Name)
	assert.Equal(t, "bob", state.Player2Name)
	assert.Equal(t, 0, state.Score1)
	assert.Equal(t, 0, state.Score2)
	assert.Equal(t, 0, state.RoundsPlayed)
	assert.Equal(t, 5, state.RoundCap)
	assert.False(t, state.ChoiceLocked)
	assert.False(t, state.Completed)
	assert.Nil(t, state.Result)
}

func TestGetMatchInvalidMode(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	rr := ts.request(http.MethodGet, "/api/v1/match?mode=teams", nil, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))
}

func TestLockHidesChoice(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	rr := ts.request(http.MethodPost, "/api/v1/match/lock", map[string]string{"choice": "Stone"}, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// The state reports a lock exists but never its value
	rr = ts.request(http.MethodGet, "/api/v1/match", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var state response.MatchState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.True(t, state.ChoiceLocked)
	assert.NotContains(t, rr.Body.String(), "Stone")
}

func TestLockIsIrreversible(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	rr := ts.request(http.MethodPost, "/api/v1/match/lock", map[string]string{"choice": "Paper"}, token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/match/lock", map[string]string{"choice": "Scissor"}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeChoiceLocked, errorCode(t, rr))
}

func TestLockUnknownChoice(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	for _, choice := range []string{"", "Rock", "stone", " Stone"} {
		rr := ts.request(http.MethodPost, "/api/v1/match/lock", map[string]string{"choice": choice}, token)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "choice %q", choice)
		assert.Equal(t, apierr.CodeUnknownChoice, errorCode(t, rr))
	}
}

func TestPlayWithoutLock(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	body := map[string]string{"mode": "pvp", "player2_choice": "Stone"}
	rr := ts.request(http.MethodPost, "/api/v1/match/play", body, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeNotLocked, errorCode(t, rr))
}

func TestPlayPvpRound(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	rr := ts.request(http.MethodPost, "/api/v1/match/lock", map[string]string{"choice": "Paper"}, token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	body := map[string]string{"mode": "pvp", "player2_choice": "Stone"}
	rr = ts.request(http.MethodPost, "/api/v1/match/play", body, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Round response.Round      `json:"round"`
		Match response.MatchState `json:"match"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	// Paper wraps Stone
	assert.Equal(t, 1, resp.Round.Round)
	assert.Equal(t, "Paper", resp.Round.Player1Choice)
	assert.Equal(t, "Stone", resp.Round.Player2Choice)
	assert.Equal(t, "alice", resp.Round.Winner)

	assert.Equal(t, 1, resp.Match.Score1)
	assert.Equal(t, 0, resp.Match.Score2)
	assert.Equal(t, 1, resp.Match.RoundsPlayed)
	assert.False(t, resp.Match.ChoiceLocked)
}

func TestPlayPvpMissingOpponentChoice(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	rr := ts.request(http.MethodPost, "/api/v1/match/lock", map[string]string{"choice": "Paper"}, token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/match/play", map[string]string{"mode": "pvp"}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeUnknownChoice, errorCode(t, rr))

	// The failed play left the lock and round count untouched
	rr = ts.request(http.MethodGet, "/api/v1/match", nil, token)
	var state response.MatchState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.True(t, state.ChoiceLocked)
	assert.Equal(t, 0, state.RoundsPlayed)
}

func TestPlayPvcHardCountersLock(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	// Hard difficulty always plays the counter of the locked choice,
	// so the outcome is deterministic
	rr := ts.request(http.MethodPost, "/api/v1/match/lock", map[string]string{"choice": "Scissor"}, token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	body := map[string]string{"mode": "pvc", "difficulty": "hard"}
	rr = ts.request(http.MethodPost, "/api/v1/match/play", body, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Round response.Round      `json:"round"`
		Match response.MatchState `json:"match"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Stone", resp.Round.Player2Choice)
	assert.Equal(t, model.ComputerName, resp.Round.Winner)
	assert.Equal(t, 1, resp.Match.Score2)
}

func TestPlayPvcEasy(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	rr := ts.request(http.MethodPost, "/api/v1/match/lock", map[string]string{"choice": "Stone"}, token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/match/play", map[string]string{"mode": "pvc"}, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Round response.Round      `json:"round"`
		Match response.MatchState `json:"match"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	// Easy picks uniformly at random; just check the round is well-formed
	assert.Contains(t, []string{"Stone", "Paper", "Scissor"}, resp.Round.Player2Choice)
	assert.Contains(t, []string{"alice", model.ComputerName, model.WinnerDraw}, resp.Round.Winner)
	assert.Equal(t, 1, resp.Match.RoundsPlayed)
}

func TestPlayUnknownDifficulty(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	rr := ts.request(http.MethodPost, "/api/v1/match/lock", map[string]string{"choice": "Stone"}, token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	body := map[string]string{"mode": "pvc", "difficulty": "nightmare"}
	rr = ts.request(http.MethodPost, "/api/v1/match/play", body, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))
}

func TestMatchCompletes(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	// alice wins three rounds, bob two
	ts.lockAndPlay(t, token, "Paper", "Stone")
	ts.lockAndPlay(t, token, "Scissor", "Paper")
	ts.lockAndPlay(t, token, "Stone", "Paper")
	ts.lockAndPlay(t, token, "Stone", "Paper")
	ts.lockAndPlay(t, token, "Stone", "Scissor")

	rr := ts.request(http.MethodGet, "/api/v1/match?mode=pvp", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var state response.MatchState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.True(t, state.Completed)
	assert.Equal(t, 3, state.Score1)
	assert.Equal(t, 2, state.Score2)
	require.NotNil(t, state.Result)
	assert.Equal(t, "alice", *state.Result)

	// No further interaction once complete
	rr = ts.request(http.MethodPost, "/api/v1/match/lock", map[string]string{"choice": "Stone"}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeMatchComplete, errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/match/play", map[string]string{"mode": "pvp", "player2_choice": "Stone"}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeMatchComplete, errorCode(t, rr))
}

func TestMatchDrawResult(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	ts.lockAndPlay(t, token, "Paper", "Stone")
	ts.lockAndPlay(t, token, "Stone", "Paper")
	ts.lockAndPlay(t, token, "Paper", "Stone")
	ts.lockAndPlay(t, token, "Stone", "Paper")
	ts.lockAndPlay(t, token, "Stone", "Stone")

	rr := ts.request(http.MethodGet, "/api/v1/match?mode=pvp", nil, token)
	var state response.MatchState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.True(t, state.Completed)
	require.NotNil(t, state.Result)
	assert.Equal(t, model.WinnerDraw, *state.Result)
}

func TestReset(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	ts.lockAndPlay(t, token, "Paper", "Stone")
	ts.lockAndPlay(t, token, "Stone", "Paper")

	rr := ts.request(http.MethodPost, "/api/v1/match/reset", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var state response.MatchState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, 0, state.Score1)
	assert.Equal(t, 0, state.Score2)
	assert.Equal(t, 0, state.RoundsPlayed)
	assert.False(t, state.Completed)
	assert.Equal(t, "alice", state.Player1Name)
	assert.Equal(t, "bob", state.Player2Name)

	rr = ts.request(http.MethodGet, "/api/v1/match/history", nil, token)
	var history response.HistoryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &history))
	assert.Empty(t, history.Rounds)
}

func TestRematchAfterCompletion(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	for i := 0; i < 5; i++ {
		ts.lockAndPlay(t, token, "Paper", "Stone")
	}

	rr := ts.request(http.MethodPost, "/api/v1/match/rematch", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var state response.MatchState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.False(t, state.Completed)
	assert.Equal(t, 0, state.RoundsPlayed)

	// A fresh match is playable again
	ts.lockAndPlay(t, token, "Stone", "Scissor")
}

func TestHistory(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	ts.lockAndPlay(t, token, "Paper", "Stone")
	ts.lockAndPlay(t, token, "Stone", "Stone")
	ts.lockAndPlay(t, token, "Stone", "Paper")

	rr := ts.request(http.MethodGet, "/api/v1/match/history", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var history response.HistoryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &history))
	require.Len(t, history.Rounds, 3)

	assert.Equal(t, response.Round{Round: 1, Player1Choice: "Paper", Player2Choice: "Stone", Winner: "alice"}, history.Rounds[0])
	assert.Equal(t, response.Round{Round: 2, Player1Choice: "Stone", Player2Choice: "Stone", Winner: model.WinnerDraw}, history.Rounds[1])
	assert.Equal(t, response.Round{Round: 3, Player1Choice: "Stone", Player2Choice: "Paper", Winner: "bob"}, history.Rounds[2])
}

func TestChart(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	ts.lockAndPlay(t, token, "Paper", "Stone")
	ts.lockAndPlay(t, token, "Stone", "Stone")
	ts.lockAndPlay(t, token, "Stone", "Paper")
	ts.lockAndPlay(t, token, "Scissor", "Paper")

	rr := ts.request(http.MethodGet, "/api/v1/match/chart", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var chart response.ChartResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &chart))

	// Ordered by first win; draws are not counted
	require.Len(t, chart.Counts, 2)
	assert.Equal(t, response.WinCount{Name: "alice", Wins: 2}, chart.Counts[0])
	assert.Equal(t, response.WinCount{Name: "bob", Wins: 1}, chart.Counts[1])
}

func TestSessionsAreIsolated(t *testing.T) {
	ts := newTestServer(t)
	token1 := ts.loginPair(t)

	ts.registerUser(t, "carol", "secret3")
	ts.registerUser(t, "dave", "secret4")
	body := map[string]string{
		"player1_username": "carol",
		"player1_password": "secret3",
		"player2_username": "dave",
		"player2_password": "secret4",
	}
	rr := ts.request(http.MethodPost, "/api/v1/accounts/login", body, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	token2 := resp.SessionToken

	ts.lockAndPlay(t, token1, "Paper", "Stone")

	// The second pair's match is unaffected
	rr = ts.request(http.MethodGet, "/api/v1/match", nil, token2)
	var state response.MatchState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, 0, state.RoundsPlayed)
	assert.Equal(t, "carol", state.Player1Name)
}

func TestInvalidToken(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/match", nil, "sess_bogus")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apierr.CodeUnauthorized, errorCode(t, rr))
}

func TestConcurrentPlaySafety(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	// Fire overlapping locks; exactly one may win each round but the
	// match state must stay consistent
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			choice := []string{"Stone", "Paper", "Scissor"}[i%3]
			ts.request(http.MethodPost, "/api/v1/match/lock", map[string]string{"choice": choice}, token)
		}(i)
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	rr := ts.request(http.MethodGet, "/api/v1/match", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	var state response.MatchState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.True(t, state.ChoiceLocked)
	assert.Equal(t, 0, state.RoundsPlayed)
}

func TestPlayRequestBodyMalformed(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginPair(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match/play", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))
}
