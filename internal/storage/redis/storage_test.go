package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/craftdeck/craftdeck/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) credential(key string) *model.Credential {
	return &model.Credential{
		Key:       key,
		Role:      model.RoleAdmin,
		Owner:     "Alex",
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Credential tests

func (s *StorageSuite) TestSaveAndGetCredential() {
	cred := s.credential("ck_abc")

	s.Require().NoError(s.storage.SaveCredential(s.ctx, cred))

	retrieved, err := s.storage.GetCredential(s.ctx, "ck_abc")
	s.Require().NoError(err)
	s.Equal(cred.Key, retrieved.Key)
	s.Equal(cred.Role, retrieved.Role)
	s.Equal(cred.Owner, retrieved.Owner)
	s.True(cred.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetCredentialNotFound() {
	_, err := s.storage.GetCredential(s.ctx, "ck_missing")
	s.ErrorIs(err, model.ErrCredentialNotFound)
}

func (s *StorageSuite) TestListCredentials() {
	s.Require().NoError(s.storage.SaveCredential(s.ctx, s.credential("ck_a")))
	s.Require().NoError(s.storage.SaveCredential(s.ctx, s.credential("ck_b")))

	creds, err := s.storage.ListCredentials(s.ctx)
	s.Require().NoError(err)
	s.Len(creds, 2)
}

func (s *StorageSuite) TestListCredentialsSkipsDanglingIndexEntry() {
	s.Require().NoError(s.storage.SaveCredential(s.ctx, s.credential("ck_a")))

	// Drop the record but leave the index entry behind
	s.mini.Del(credentialKey("ck_a"))

	creds, err := s.storage.ListCredentials(s.ctx)
	s.Require().NoError(err)
	s.Empty(creds)
}

func (s *StorageSuite) TestDeleteCredential() {
	s.Require().NoError(s.storage.SaveCredential(s.ctx, s.credential("ck_abc")))
	s.Require().NoError(s.storage.DeleteCredential(s.ctx, "ck_abc"))

	_, err := s.storage.GetCredential(s.ctx, "ck_abc")
	s.ErrorIs(err, model.ErrCredentialNotFound)

	creds, err := s.storage.ListCredentials(s.ctx)
	s.Require().NoError(err)
	s.Empty(creds)
}

func (s *StorageSuite) TestDeleteCredentialAbsentKeySucceeds() {
	s.NoError(s.storage.DeleteCredential(s.ctx, "ck_never"))
}

// Audit log tests

func (s *StorageSuite) TestAppendAssignsMonotonicIDs() {
	for i := 0; i < 3; i++ {
		record := &model.AuditRecord{Action: "exec"}
		s.Require().NoError(s.storage.AppendAuditRecord(s.ctx, record))
		s.Equal(int64(i+1), record.ID)
	}
}

func (s *StorageSuite) TestRecentAuditRecordsMostRecentFirst() {
	for i := 0; i < 5; i++ {
		record := &model.AuditRecord{Action: fmt.Sprintf("action-%d", i)}
		s.Require().NoError(s.storage.AppendAuditRecord(s.ctx, record))
	}

	records, err := s.storage.RecentAuditRecords(s.ctx, 3)
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal("action-4", records[0].Action)
	s.Equal("action-3", records[1].Action)
	s.Equal("action-2", records[2].Action)
}

func (s *StorageSuite) TestRecentAuditRecordsLimitBeyondSize() {
	s.Require().NoError(s.storage.AppendAuditRecord(s.ctx, &model.AuditRecord{Action: "exec"}))

	records, err := s.storage.RecentAuditRecords(s.ctx, 100)
	s.Require().NoError(err)
	s.Len(records, 1)
}

func (s *StorageSuite) TestRecentAuditRecordsEmpty() {
	records, err := s.storage.RecentAuditRecords(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *StorageSuite) TestAuditRecordRoundTripsAllFields() {
	record := &model.AuditRecord{
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		KeyID:     "ck_test",
		Role:      model.RoleAdmin,
		Action:    "whitelist_add",
		Detail:    "player=Steve",
		Origin:    "10.0.0.1",
	}
	s.Require().NoError(s.storage.AppendAuditRecord(s.ctx, record))

	records, err := s.storage.RecentAuditRecords(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(records, 1)

	got := records[0]
	s.Equal(record.ID, got.ID)
	s.Equal("ck_test", got.KeyID)
	s.Equal(model.RoleAdmin, got.Role)
	s.Equal("whitelist_add", got.Action)
	s.Equal("player=Steve", got.Detail)
	s.Equal("10.0.0.1", got.Origin)
}
