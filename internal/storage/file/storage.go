package file

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/storage"
)

// Storage is a flat-file implementation of the storage interface.
//
// The backing file is a JSON array of credential records, read once at
// construction and rewritten in full on every save. An absent file is
// first-run, not an error: an empty array is written in its place.
// Concurrent writers from separate processes can race on the rewrite;
// that hazard is inherited from the file format and not guarded here.
type Storage struct {
	mu   sync.RWMutex
	path string

	users []model.UserRecord
	index map[string]int
}

// New creates a file storage backed by the given path, loading any
// existing records
func New(path string) (*Storage, error) {
	s := &Storage{
		path:  path,
		index: make(map[string]int),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: persist an empty store
			return s.rewrite()
		}
		return err
	}

	var users []model.UserRecord
	if err := json.Unmarshal(data, &users); err != nil {
		return err
	}

	s.users = users
	for i, u := range users {
		s.index[u.Username] = i
	}
	return nil
}

// rewrite persists the entire record sequence. Callers hold the lock.
func (s *Storage) rewrite() error {
	data, err := json.MarshalIndent(s.users, "", "    ")
	if err != nil {
		return err
	}
	if s.users == nil {
		data = []byte("[]")
	}
	return os.WriteFile(s.path, data, 0o644)
}

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

	if err := s.rewrite(); err != nil {
		// Roll back the in-memory append so memory and disk stay in sync
		s.users = s.users[:len(s.users)-1]
		delete(s.index, rec.Username)
		return err
	}
	return nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]model.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.UserRecord, len(s.users))
	copy(result, s.users)
	return result, nil
}
