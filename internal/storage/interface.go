package storage

import (
	"context"

	"github.com/craftdeck/craftdeck/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Credential operations
	SaveCredential(ctx context.Context, cred *model.Credential) error
	GetCredential(ctx context.Context, key string) (*model.Credential, error)
	ListCredentials(ctx context.Context) ([]*model.Credential, error)
	// DeleteCredential is idempotent: deleting an absent key is not an error
	DeleteCredential(ctx context.Context, key string) error

	// Audit log operations. The log is append-only: no update or delete exists.
	// AppendAuditRecord assigns the record's ID before returning.
	AppendAuditRecord(ctx context.Context, record *model.AuditRecord) error
	// RecentAuditRecords returns up to limit records, most recent first
	RecentAuditRecords(ctx context.Context, limit int) ([]*model.AuditRecord, error)
}
