package storage

import (
	"context"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
)

// Storage defines the interface for credential persistence
type Storage interface {
	// GetUser returns the record for the given username,
	// or model.ErrUserNotFound. Matching is exact and case-sensitive.
	GetUser(ctx context.Context, username string) (*model.UserRecord, error)

	// SaveUser appends a new credential record.
	// Returns model.ErrDuplicateUser if the username is already taken.
	SaveUser(ctx context.Context, rec *model.UserRecord) error

	// ListUsers returns all records in registration order
	ListUsers(ctx context.Context) ([]model.UserRecord, error)
}
