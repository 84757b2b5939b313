package handler

import (
	"encoding/json"
	"net/http"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/api/middleware"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/api/request"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/api/response"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/auth"
)

// AccountHandler handles account and session endpoints
type AccountHandler struct {
	authService *auth.Service
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(authService *auth.Service) *AccountHandler {
	return &AccountHandler{
		authService: authService,
	}
}

// Register handles POST /api/v1/accounts/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	if err := h.authService.Register(r.Context(), req.Username, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]string{"username": req.Username})
}

// Login handles POST /api/v1/accounts/login
// Both players' credentials are submitted together; either failing
// rejects the whole login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Player1Username == "" || req.Player2Username == "" {
		WriteError(w, NewInvalidRequestError("both usernames are required"))
		return
	}

	session, err := h.authService.LoginBoth(r.Context(),
		req.Player1Username, req.Player1Password,
		req.Player2Username, req.Player2Password,
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// GetSession handles GET /api/v1/session
func (h *AccountHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/session/logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	h.authService.InvalidateSession(session.Token)
	response.NoContent(w)
}
