package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/craftdeck/craftdeck/internal/dependencies/clock"
	"github.com/craftdeck/craftdeck/internal/services/audit"
	"github.com/craftdeck/craftdeck/internal/services/auth"
	"github.com/craftdeck/craftdeck/internal/services/console"
	"github.com/craftdeck/craftdeck/internal/services/process"
	"github.com/craftdeck/craftdeck/internal/services/roster"
	"github.com/craftdeck/craftdeck/internal/storage"
	"github.com/craftdeck/craftdeck/internal/storage/memory"
	redisstorage "github.com/craftdeck/craftdeck/internal/storage/redis"
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
	Clock      clock.Clock
	Channel    console.Channel
	Controller process.Controller

	// Services
	AuthService    *auth.Service
	AuditService   *audit.Service
	ConsoleService *console.Service
	RosterService  *roster.Service
	ProcessService *process.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds the root secret
	AuthConfig auth.Config
	// ConsoleConfig holds command timeout and history bounds (optional)
	ConsoleConfig console.Config
	// ProcessConfig holds the managed server's log location (optional)
	ProcessConfig process.Config
	// Channel delivers console commands to the managed server (required)
	Channel console.Channel
	// Controller drives the managed server process (required)
	Controller process.Controller
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

	if cfg.Channel == nil {
		return nil, errors.New("Channel is required")
	}
	if cfg.Controller == nil {
		return nil, errors.New("Controller is required")
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

	clk := clock.New()

	consoleCfg := cfg.ConsoleConfig
	if consoleCfg.CommandTimeout == 0 {
		consoleCfg = console.DefaultConfig()
	}

	return newWithDependencies(store, clk, cfg.Channel, cfg.Controller, cfg.AuthConfig, consoleCfg, cfg.ProcessConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	channel console.Channel,
	controller process.Controller,
	authCfg auth.Config,
	consoleCfg console.Config,
	processCfg process.Config,
	logger *slog.Logger,
) *App {
	authService := auth.New(store, clk, authCfg, logger)
	auditService := audit.New(store, clk, logger)
	consoleService := console.New(channel, clk, consoleCfg, logger)
	rosterService := roster.New(consoleService, logger)
	processService := process.New(controller, processCfg, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Channel:        channel,
		Controller:     controller,
		AuthService:    authService,
		AuditService:   auditService,
		ConsoleService: consoleService,
		RosterService:  rosterService,
		ProcessService: processService,
	}
}
