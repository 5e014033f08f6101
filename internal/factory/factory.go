// Package factory wires the application together.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/tmazur/sketchbluff/internal/dependencies/clock"
	"github.com/tmazur/sketchbluff/internal/dependencies/random"
	"github.com/tmazur/sketchbluff/internal/services/phrases"
	"github.com/tmazur/sketchbluff/internal/services/room"
	"github.com/tmazur/sketchbluff/internal/services/scoring"
	"github.com/tmazur/sketchbluff/internal/storage"
	"github.com/tmazur/sketchbluff/internal/storage/memory"
	redisstorage "github.com/tmazur/sketchbluff/internal/storage/redis"
	"github.com/tmazur/sketchbluff/internal/transport/ws"
)

// Storage type constants
const (
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
	ScoringService *scoring.Service
	PhrasesService *phrases.Service
	RoomController *room.Controller
	HubManager     *ws.HubManager
	WSHandler      *ws.Handler
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
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
		storageType = StorageTypeMemory
	}

	switch storageType {
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
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	scoringService := scoring.New()
	phrasesService := phrases.New(store, rnd)
	roomController := room.NewController(store, scoringService, clk, rnd, logger)
	hubManager := ws.NewHubManager(logger)
	wsHandler := ws.NewHandler(roomController, hubManager, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		ScoringService: scoringService,
		PhrasesService: phrasesService,
		RoomController: roomController,
		HubManager:     hubManager,
		WSHandler:      wsHandler,
	}
}
