package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/craftdeck/craftdeck/internal/dependencies/clock"
	"github.com/craftdeck/craftdeck/internal/model"
	"github.com/craftdeck/craftdeck/internal/storage"
)

// ErrForbidden is the uniform failure for a missing credential, an unknown
// key, and an insufficient role. Callers cannot distinguish the three from
// the response, so valid keys are not enumerable by probing.
var ErrForbidden = errors.New("forbidden")

// keyBytes is the entropy of an issued key (256 bits)
const keyBytes = 32

// issueRetries bounds the collision-retry loop in IssueCredential. With
// 256-bit keys a retry should never be observed.
const issueRetries = 3

// Service resolves presented keys to principals and manages issued credentials
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	rootKey string
	logger  *slog.Logger
}

// Config holds configuration for the auth service
type Config struct {
	// RootKey is the root secret. It is never stored and always resolves to
	// the root role, regardless of store contents.
	RootKey string
}

// New creates a new auth service
func New(storage storage.Storage, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		rootKey: cfg.RootKey,
		logger:  logger,
	}
}

// Authenticate resolves a presented key to a principal. The root-secret
// comparison takes priority over any store lookup and is constant-time.
func (s *Service) Authenticate(ctx context.Context, presentedKey, origin string) (*model.Principal, error) {
	if presentedKey == "" {
		return nil, ErrForbidden
	}

	if s.isRootKey(presentedKey) {
		return &model.Principal{
			KeyID:  model.RootKeyID,
			Role:   model.RoleRoot,
			Origin: origin,
		}, nil
	}

	cred, err := s.storage.GetCredential(ctx, presentedKey)
	if err != nil {
		if errors.Is(err, model.ErrCredentialNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	return &model.Principal{
		KeyID:  cred.Key,
		Role:   cred.Role,
		Owner:  cred.Owner,
		Origin: origin,
	}, nil
}

// RequireRoot accepts only the root secret; any other key fails Forbidden
// without a store lookup. Gates credential management and audit queries.
func (s *Service) RequireRoot(presentedKey, origin string) (*model.Principal, error) {
	if presentedKey == "" || !s.isRootKey(presentedKey) {
		return nil, ErrForbidden
	}
	return &model.Principal{
		KeyID:  model.RootKeyID,
		Role:   model.RoleRoot,
		Origin: origin,
	}, nil
}

// RequireRole fails Forbidden unless the principal's role is in the allowed
// set. Root passes every gate.
func (s *Service) RequireRole(principal *model.Principal, roles ...model.Role) error {
	if principal == nil || !principal.Role.In(roles...) {
		return ErrForbidden
	}
	return nil
}

// IssueCredential generates a new unique key and persists the credential.
// This is the only time the plaintext key is generated; the caller is
// responsible for gating to root.
func (s *Service) IssueCredential(ctx context.Context, role model.Role, owner string) (*model.Credential, error) {
	if !model.ValidIssuableRole(role) {
		return nil, fmt.Errorf("role %q is not issuable", role)
	}

	for attempt := 0; attempt < issueRetries; attempt++ {
		key := generateKey()

		_, err := s.storage.GetCredential(ctx, key)
		if err == nil {
			s.logger.Warn("credential key collision", slog.Int("attempt", attempt))
			continue
		}
		if !errors.Is(err, model.ErrCredentialNotFound) {
			return nil, err
		}

		cred := &model.Credential{
			Key:       key,
			Role:      role,
			Owner:     owner,
			CreatedAt: s.clock.Now(),
		}
		if err := s.storage.SaveCredential(ctx, cred); err != nil {
			return nil, err
		}
		return cred, nil
	}

	return nil, errors.New("could not generate a unique credential key")
}

// ListCredentials returns all stored credentials
func (s *Service) ListCredentials(ctx context.Context) ([]*model.Credential, error) {
	return s.storage.ListCredentials(ctx)
}

// SelfCredential returns the principal's own credential record. For the root
// principal a synthetic record is returned, since root is never stored.
func (s *Service) SelfCredential(ctx context.Context, principal *model.Principal) (*model.Credential, error) {
	if principal.IsRoot() {
		return &model.Credential{
			Key:  model.RootKeyID,
			Role: model.RoleRoot,
		}, nil
	}
	return s.storage.GetCredential(ctx, principal.KeyID)
}

// RevokeCredential deletes a credential. Idempotent: revoking an absent key
// succeeds.
func (s *Service) RevokeCredential(ctx context.Context, key string) error {
	return s.storage.DeleteCredential(ctx, key)
}

func (s *Service) isRootKey(presentedKey string) bool {
	return subtle.ConstantTimeCompare([]byte(presentedKey), []byte(s.rootKey)) == 1
}

// generateKey generates a random credential key
func generateKey() string {
	b := make([]byte, keyBytes)
	_, _ = rand.Read(b)
	return "ck_" + base64.RawURLEncoding.EncodeToString(b)
}
