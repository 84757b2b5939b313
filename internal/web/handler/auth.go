package handler

import (
	"net/http"
	"time"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/auth"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/web/middleware"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/web/templates"
)

// AuthHandler handles authentication pages and actions
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		// Already logged in, go straight to the game
		http.Redirect(w, r, "/game", http.StatusSeeOther)
		return
	}

	data := templates.LoginData{
		PageData: templates.PageData{
			Title: "Login",
			Flash: middleware.GetFlash(r.Context()),
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Login(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Login handles the combined two-player login form submission.
// Usernames and passwords are taken exactly as submitted; there is no
// trimming or case folding.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "", "")
		return
	}

	user1 := r.FormValue("player1_username")
	pass1 := r.FormValue("player1_password")
	user2 := r.FormValue("player2_username")
	pass2 := r.FormValue("player2_password")

	if user1 == "" || pass1 == "" || user2 == "" || pass2 == "" {
		h.renderLoginError(w, r, "All four credential fields are required", user1, user2)
		return
	}

	session, err := h.authService.LoginBoth(r.Context(), user1, pass1, user2, pass2)
	if err != nil {
		h.renderLoginError(w, r, "Invalid username or password", user1, user2)
		return
	}

	h.setSessionCookie(w, session.Token)
	middleware.SetFlash(w, "success", "Welcome, "+session.Player1Name+" and "+session.Player2Name+"!")
	http.Redirect(w, r, "/game", http.StatusSeeOther)
}

// RegisterPage renders the registration page
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	data := templates.RegisterData{
		PageData: templates.PageData{
			Title: "Register",
			Flash: middleware.GetFlash(r.Context()),
		},
		FieldErrors: make(map[string]string),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Register(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Register handles registration form submission.
// Credentials are stored exactly as submitted; the only checks are that
// the fields are non-empty, the confirmation matches, and the username
// is not taken.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegisterError(w, r, "Invalid form data", "", nil)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	passwordConfirm := r.FormValue("password_confirm")

	fieldErrors := make(map[string]string)
	if username == "" {
		fieldErrors["username"] = "Username is required"
	}
	if password == "" {
		fieldErrors["password"] = "Password is required"
	}
	if password != passwordConfirm {
		fieldErrors["password_confirm"] = "Passwords do not match"
	}

	if len(fieldErrors) > 0 {
		h.renderRegisterError(w, r, "", username, fieldErrors)
		return
	}

	if err := h.authService.Register(r.Context(), username, password); err != nil {
		fieldErrors["username"] = "Username already taken"
		h.renderRegisterError(w, r, "", username, fieldErrors)
		return
	}

	middleware.SetFlash(w, "success", "Account created for "+username+". Log in to play.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout handles logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session := middleware.GetSession(r.Context()); session != nil {
		h.authService.InvalidateSession(session.Token)
	}

	// Clear session cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		MaxAge:   86400, // matches the session duration
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, user1, user2 string) {
	data := templates.LoginData{
		PageData: templates.PageData{
			Title: "Login",
		},
		Player1Username: user1,
		Player2Username: user2,
		Error:           errorMsg,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Login(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *AuthHandler) renderRegisterError(w http.ResponseWriter, r *http.Request, errorMsg, username string, fieldErrors map[string]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string]string)
	}
	data := templates.RegisterData{
		PageData: templates.PageData{
			Title: "Register",
		},
		Username:    username,
		Error:       errorMsg,
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Register(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
