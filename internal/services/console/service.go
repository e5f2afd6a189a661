package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/craftdeck/craftdeck/internal/dependencies/clock"
	"github.com/craftdeck/craftdeck/internal/model"
)

// Service is the command gateway: it forwards command text to the channel
// under a timeout, captures bounded output, and retains a bounded history.
type Service struct {
	channel Channel
	history *History
	clock   clock.Clock
	timeout time.Duration
	logger  *slog.Logger
}

// Config holds configuration for the console service
type Config struct {
	// CommandTimeout bounds a single channel call. A timed-out command is a
	// completed call whose output reports the timeout.
	CommandTimeout time.Duration
	// HistoryCapacity bounds the in-memory command history
	HistoryCapacity int
}

// DefaultConfig returns default console configuration
func DefaultConfig() Config {
	return Config{
		CommandTimeout:  10 * time.Second,
		HistoryCapacity: DefaultHistoryCapacity,
	}
}

// New creates a new console service
func New(channel Channel, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.CommandTimeout == 0 {
		cfg.CommandTimeout = DefaultConfig().CommandTimeout
	}
	return &Service{
		channel: channel,
		history: NewHistory(cfg.HistoryCapacity),
		clock:   clk,
		timeout: cfg.CommandTimeout,
		logger:  logger,
	}
}

// Execute forwards command text to the channel and returns the captured
// result. Channel failures are embedded in the record's output rather than
// replacing it; the returned error reports the failure separately so callers
// can record it distinctly (e.g. in audit detail) while still presenting the
// record. The record is always appended to history.
//
// The timeout applies to the channel call only; no lock is held while
// waiting. There is no cancellation signal to the underlying channel beyond
// context expiry (known limitation).
func (s *Service) Execute(ctx context.Context, command string) (model.CommandRecord, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.channel.Send(callCtx, command)

	output := strings.TrimSpace(out)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded):
			output = fmt.Sprintf("command timed out after %s", s.timeout)
			err = fmt.Errorf("command timed out after %s", s.timeout)
		case output == "":
			output = fmt.Sprintf("command failed: %v", err)
		default:
			output = fmt.Sprintf("command failed: %v: %s", err, output)
		}
		s.logger.Warn("console command failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
	}

	record := model.CommandRecord{
		Timestamp: s.clock.Now(),
		Command:   command,
		Output:    output,
	}
	s.history.Append(record)

	return record, err
}

// History returns the retained command records, most recent first
func (s *Service) History() []model.CommandRecord {
	return s.history.Recent()
}
