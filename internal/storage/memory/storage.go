package memory

import (
	"context"
	"sync"

	"github.com/craftdeck/craftdeck/internal/model"
	"github.com/craftdeck/craftdeck/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	credentials map[string]*model.Credential
	audit       []*model.AuditRecord
	nextAuditID int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		credentials: make(map[string]*model.Credential),
		nextAuditID: 1,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Credential operations

func (s *Storage) SaveCredential(ctx context.Context, cred *model.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *cred
	s.credentials[cred.Key] = &c
	return nil
}

func (s *Storage) GetCredential(ctx context.Context, key string) (*model.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.credentials[key]
	if !ok {
		return nil, model.ErrCredentialNotFound
	}
	c := *cred
	return &c, nil
}

func (s *Storage) ListCredentials(ctx context.Context) ([]*model.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	creds := make([]*model.Credential, 0, len(s.credentials))
	for _, cred := range s.credentials {
		c := *cred
		creds = append(creds, &c)
	}
	return creds, nil
}

func (s *Storage) DeleteCredential(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.credentials, key)
	return nil
}

// Audit log operations

func (s *Storage) AppendAuditRecord(ctx context.Context, record *model.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record.ID = s.nextAuditID
	s.nextAuditID++
	r := *record
	s.audit = append(s.audit, &r)
	return nil
}

func (s *Storage) RecentAuditRecords(ctx context.Context, limit int) ([]*model.AuditRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.audit)
	if limit > n {
		limit = n
	}
	records := make([]*model.AuditRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		r := *s.audit[i]
		records = append(records, &r)
	}
	return records, nil
}
