package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/model"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Registration order is preserved via a LIST of usernames alongside the
// per-user records.
type Storage struct {
	client *redis.Client
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client) *Storage {
	return &Storage{client: client}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetUser(ctx context.Context, username string) (*model.UserRecord, error) {
	data, err := s.client.Get(ctx, userKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var rec model.UserRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Storage) SaveUser(ctx context.Context, rec *model.UserRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	// SETNX doubles as the duplicate-username check
	ok, err := s.client.SetNX(ctx, userKey(rec.Username), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrDuplicateUser
	}

	return s.client.RPush(ctx, userOrderKey(), rec.Username).Err()
}

func (s *Storage) ListUsers(ctx context.Context) ([]model.UserRecord, error) {
	usernames, err := s.client.LRange(ctx, userOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(usernames) == 0 {
		return []model.UserRecord{}, nil
	}

	keys := make([]string, len(usernames))
	for i, u := range usernames {
		keys[i] = userKey(u)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	users := make([]model.UserRecord, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Record deleted out of band
		}
		var rec model.UserRecord
		if err := json.Unmarshal([]byte(val.(string)), &rec); err != nil {
			continue // Skip invalid data
		}
		users = append(users, rec)
	}

	return users, nil
}
