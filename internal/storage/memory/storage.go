package memory

import (
	"context"
	"sync"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users []model.UserRecord
	index map[string]int
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		index: make(map[string]int),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetUser(ctx context.Context, username string) (*model.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	rec := s.users[i]
	return &rec, nil
}

func (s *Storage) SaveUser(ctx context.Context, rec *model.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[rec.Username]; ok {
		return model.ErrDuplicateUser
	}
	s.index[rec.Username] = len(s.users)
	s.users = append(s.users, *rec)
	return nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]model.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.UserRecord, len(s.users))
	copy(result, s.users)
	return result, nil
}
