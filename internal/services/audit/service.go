package audit

import (
	"context"
	"log/slog"

	"github.com/craftdeck/craftdeck/internal/dependencies/clock"
	"github.com/craftdeck/craftdeck/internal/model"
	"github.com/craftdeck/craftdeck/internal/storage"
)

// RecentLimit caps a single read-side audit query
const RecentLimit = 100

// Service records privileged actions to the append-only audit log
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new audit service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// Record appends an audit record for the principal's action. The append
// completes before Record returns; a storage failure is logged rather than
// propagated so a broken audit backend does not mask the action's own result.
func (s *Service) Record(ctx context.Context, principal *model.Principal, action, detail string) {
	record := &model.AuditRecord{
		Timestamp: s.clock.Now(),
		KeyID:     principal.KeyID,
		Role:      principal.Role,
		Action:    action,
		Detail:    detail,
		Origin:    principal.Origin,
	}

	if err := s.storage.AppendAuditRecord(ctx, record); err != nil {
		s.logger.Error("failed to append audit record",
			slog.String("action", action),
			slog.String("key_id", principal.KeyID),
			slog.String("error", err.Error()),
		)
	}
}

// Recent returns up to limit records, most recent first. Limit is clamped
// to RecentLimit; a non-positive limit means RecentLimit.
func (s *Service) Recent(ctx context.Context, limit int) ([]*model.AuditRecord, error) {
	if limit <= 0 || limit > RecentLimit {
		limit = RecentLimit
	}
	return s.storage.RecentAuditRecords(ctx, limit)
}
