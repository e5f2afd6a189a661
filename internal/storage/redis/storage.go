package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/craftdeck/craftdeck/internal/model"
	"github.com/craftdeck/craftdeck/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Credentials are JSON blobs under prefixed keys with a SET index for listing;
// the audit log is an RPUSH-only list with an INCR-backed ID counter.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Credential operations

func (s *Storage) SaveCredential(ctx context.Context, cred *model.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, credentialKey(cred.Key), data, 0)
	pipe.SAdd(ctx, credentialIndexKey(), cred.Key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetCredential(ctx context.Context, key string) (*model.Credential, error) {
	data, err := s.client.Get(ctx, credentialKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCredentialNotFound
		}
		return nil, err
	}

	var cred model.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

func (s *Storage) ListCredentials(ctx context.Context) ([]*model.Credential, error) {
	keys, err := s.client.SMembers(ctx, credentialIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	creds := make([]*model.Credential, 0, len(keys))
	for _, key := range keys {
		cred, err := s.GetCredential(ctx, key)
		if err != nil {
			// Index entry without a record: a concurrent delete, skip it
			if errors.Is(err, model.ErrCredentialNotFound) {
				continue
			}
			return nil, err
		}
		creds = append(creds, cred)
	}
	return creds, nil
}

func (s *Storage) DeleteCredential(ctx context.Context, key string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, credentialKey(key))
	pipe.SRem(ctx, credentialIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

// Audit log operations

func (s *Storage) AppendAuditRecord(ctx context.Context, record *model.AuditRecord) error {
	id, err := s.client.Incr(ctx, auditIDKey()).Result()
	if err != nil {
		return err
	}
	record.ID = id

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return s.client.RPush(ctx, auditLogKey(), data).Err()
}

func (s *Storage) RecentAuditRecords(ctx context.Context, limit int) ([]*model.AuditRecord, error) {
	length, err := s.client.LLen(ctx, auditLogKey()).Result()
	if err != nil {
		return nil, err
	}

	start := length - int64(limit)
	if start < 0 {
		start = 0
	}

	items, err := s.client.LRange(ctx, auditLogKey(), start, -1).Result()
	if err != nil {
		return nil, err
	}

	// LRange returns oldest first; the read contract is most recent first
	records := make([]*model.AuditRecord, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		var record model.AuditRecord
		if err := json.Unmarshal([]byte(items[i]), &record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, nil
}
