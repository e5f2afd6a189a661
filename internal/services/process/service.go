package process

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// DefaultLogLines bounds a log view when the caller does not say otherwise
const DefaultLogLines = 200

// Service wraps the process controller and the managed server's log file
type Service struct {
	controller Controller
	logFile    string
	logger     *slog.Logger
}

// Config holds configuration for the process service
type Config struct {
	// LogFile is the managed server's latest log (e.g. /mc-data/logs/latest.log)
	LogFile string
}

// New creates a new process service
func New(controller Controller, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		controller: controller,
		logFile:    cfg.LogFile,
		logger:     logger,
	}
}

// Start starts the managed server
func (s *Service) Start(ctx context.Context) error {
	return s.controller.Start(ctx)
}

// Stop stops the managed server
func (s *Service) Stop(ctx context.Context) error {
	return s.controller.Stop(ctx)
}

// Status returns the managed server's status line
func (s *Service) Status(ctx context.Context) (string, error) {
	return s.controller.Status(ctx)
}

// Logs returns the last lines of the managed server's log. A missing log
// file is not an error: the server may simply never have started.
func (s *Service) Logs(lines int) (string, error) {
	if lines <= 0 {
		lines = DefaultLogLines
	}

	data, err := os.ReadFile(s.logFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	return tail(string(data), lines), nil
}

// tail returns the last n lines of text
func tail(text string, n int) string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return ""
	}

	all := strings.Split(text, "\n")
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return strings.Join(all, "\n")
}
