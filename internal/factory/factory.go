package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/prilectro1098/stone-paper-scissor-game/internal/dependencies/clock"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/dependencies/random"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/auth"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/bot"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/services/match"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/storage"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/storage/file"
	"github.com/prilectro1098/stone-paper-scissor-game/internal/storage/memory"
	redisstorage "github.com/prilectro1098/stone-paper-scissor-game/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BotService      *bot.Service
	MatchController *match.Controller
	AuthService     *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("file", "memory" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// UsersFile is the path to the credential file (required if StorageType is "file")
	UsersFile string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// AuthConfig holds configuration for the auth service (optional)
	AuthConfig auth.Config
	// MatchConfig holds configuration for the match controller (optional)
	MatchConfig match.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeFile:
		if cfg.UsersFile == "" {
			return nil, errors.New("UsersFile required when StorageType is file")
		}
		fileStore, err := file.New(cfg.UsersFile)
		if err != nil {
			return nil, err
		}
		store = fileStore
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'file', 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	matchCfg := cfg.MatchConfig
	if matchCfg.RoundTimeLimit == 0 {
		matchCfg = match.DefaultConfig()
	}
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, matchCfg, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, matchCfg match.Config, authCfg auth.Config, logger *slog.Logger) *App {
	// Create services
	botService := bot.NewService(bot.DefaultStrategies(rnd), logger)
	matchController := match.NewController(botService, clk, matchCfg, logger)
	authService := auth.New(store, matchController, clk, authCfg, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		BotService:      botService,
		MatchController: matchController,
		AuthService:     authService,
	}
}
