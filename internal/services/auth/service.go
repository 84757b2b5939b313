package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/dependencies/clock"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/match"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// HashPassword returns the lowercase hex SHA-256 digest of the raw
// password bytes. Unsalted: this is the credential file's documented
// contract and must not be swapped for a salted scheme without changing
// the on-disk format.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Session is an authenticated two-player game session.
// It owns the match for its lifetime; handlers serialize access to the
// match through WithMatch.
type Session struct {
	Token       string
	Player1Name string
	Player2Name string
	CreatedAt   time.Time
	ExpiresAt   time.Time

	mu    sync.Mutex
	match *model.Match
}

// WithMatch runs fn with exclusive access to the session's match
func (s *Session) WithMatch(fn func(m *model.Match) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.match)
}

// Service handles registration, the combined two-player login, and
// session management
type Service struct {
	storage storage.Storage
	matches *match.Controller
	clock   clock.Clock
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(store storage.Storage, matches *match.Controller, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         store,
		matches:         matches,
		clock:           clk,
		logger:          logger.With(slog.String("component", "auth-service")),
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// FindUser looks up a credential record by username and plaintext
// password. Comparison is exact-match on the username and the password
// digest: no trimming, no case folding.
func (s *Service) FindUser(ctx context.Context, username, password string) (*model.UserRecord, error) {
	rec, err := s.storage.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if rec.PasswordHash != HashPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return rec, nil
}

// Register creates a new credential record. There is no password-strength
// or username-format validation; duplicate usernames are rejected with
// model.ErrDuplicateUser.
func (s *Service) Register(ctx context.Context, username, password string) error {
	rec := &model.UserRecord{
		Username:     username,
		PasswordHash: HashPassword(password),
	}

	if err := s.storage.SaveUser(ctx, rec); err != nil {
		return err
	}

	s.logger.Info("user registered", slog.String("username", username))
	return nil
}

// LoginBoth authenticates both player slots in one submission.
// Both lookups run independently and both must succeed; if either fails
// the session stays logged out and no partial state is retained. On
// success, a session with a fresh match is created.
func (s *Service) LoginBoth(ctx context.Context, user1, pass1, user2, pass2 string) (*Session, error) {
	_, err1 := s.FindUser(ctx, user1, pass1)
	_, err2 := s.FindUser(ctx, user2, pass2)
	if err1 != nil || err2 != nil {
		return nil, ErrInvalidCredentials
	}

	session := &Session{
		Token:       generateToken(),
		Player1Name: user1,
		Player2Name: user2,
		CreatedAt:   s.clock.Now(),
		ExpiresAt:   s.clock.Now().Add(s.sessionDuration),
		match:       s.matches.NewMatch(user1, user2),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	s.logger.Info("players logged in",
		slog.String("player1", user1),
		slog.String("player2", user2),
	)

	return session, nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// InvalidateSession removes a session (logout)
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

// generateToken generates a random session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
