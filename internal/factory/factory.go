package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bankrollhq/bankroll/internal/dependencies/clock"
	"github.com/bankrollhq/bankroll/internal/dependencies/random"
	"github.com/bankrollhq/bankroll/internal/services/room"
	"github.com/bankrollhq/bankroll/internal/storage"
	"github.com/bankrollhq/bankroll/internal/storage/memory"
	redisstorage "github.com/bankrollhq/bankroll/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage

	Clock  clock.Clock
	Random random.Random

	RoomController *room.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("memory" or "redis").
	// Empty defaults to memory.
	StorageType string
	// RedisConfig is required when StorageType is "redis"
	RedisConfig *redisstorage.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Clock overrides the system clock (optional, for tests)
	Clock clock.Clock
	// Random overrides the random source (optional, for tests)
	Random random.Random
}

// New builds a fully wired application from the given config
func New(cfg Config) (*App, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Random == nil {
		cfg.Random = random.New()
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		Storage:        store,
		Clock:          cfg.Clock,
		Random:         cfg.Random,
		RoomController: room.NewController(store, cfg.Clock, cfg.Random),
	}, nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	switch cfg.StorageType {
	case "", StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis storage requires a redis config")
		}
		return redisstorage.New(*cfg.RedisConfig)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}
}
