package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/craftdeck/craftdeck/internal/api"
	"github.com/craftdeck/craftdeck/internal/config"
	"github.com/craftdeck/craftdeck/internal/factory"
	"github.com/craftdeck/craftdeck/internal/services/auth"
	"github.com/craftdeck/craftdeck/internal/services/console"
	"github.com/craftdeck/craftdeck/internal/services/process"
	redisstorage "github.com/craftdeck/craftdeck/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration from optional file + environment
	cfg, errs := config.Load(os.Getenv("CRAFTDECK_CONFIG"))
	if len(errs) > 0 {
		for _, err := range errs {
			logger.Error("configuration error", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}

	consoleCfg := console.DefaultConfig()
	consoleCfg.CommandTimeout = cfg.CommandTimeout

	// Build factory config
	factoryCfg := factory.Config{
		Logger:        logger,
		AuthConfig:    auth.Config{RootKey: cfg.RootKey},
		ConsoleConfig: consoleCfg,
		ProcessConfig: process.Config{LogFile: cfg.LogFile},
		Channel:       console.NewExecChannel(cfg.CommandArgv),
		Controller:    process.NewDockerController(cfg.Container),
		StorageType:   cfg.StorageType,
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		AuditService:   app.AuditService,
		ConsoleService: app.ConsoleService,
		RosterService:  app.RosterService,
		ProcessService: app.ProcessService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
