package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/craftdeck/craftdeck/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) credential(key string) *model.Credential {
	return &model.Credential{
		Key:       key,
		Role:      model.RolePlayer,
		Owner:     "Steve",
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
	s.Equal(cred.CreatedAt, retrieved.CreatedAt)
}

func (s *StorageSuite) TestGetCredentialNotFound() {
	_, err := s.storage.GetCredential(s.ctx, "ck_missing")
	s.ErrorIs(err, model.ErrCredentialNotFound)
}

func (s *StorageSuite) TestGetCredentialReturnsCopy() {
	s.Require().NoError(s.storage.SaveCredential(s.ctx, s.credential("ck_abc")))

	first, err := s.storage.GetCredential(s.ctx, "ck_abc")
	s.Require().NoError(err)
	first.Owner = "mutated"

	second, err := s.storage.GetCredential(s.ctx, "ck_abc")
	s.Require().NoError(err)
	s.Equal("Steve", second.Owner)
}

func (s *StorageSuite) TestListCredentials() {
	s.Require().NoError(s.storage.SaveCredential(s.ctx, s.credential("ck_a")))
	s.Require().NoError(s.storage.SaveCredential(s.ctx, s.credential("ck_b")))

	creds, err := s.storage.ListCredentials(s.ctx)
	s.Require().NoError(err)
	s.Len(creds, 2)
}

func (s *StorageSuite) TestDeleteCredential() {
	s.Require().NoError(s.storage.SaveCredential(s.ctx, s.credential("ck_abc")))
	s.Require().NoError(s.storage.DeleteCredential(s.ctx, "ck_abc"))

	_, err := s.storage.GetCredential(s.ctx, "ck_abc")
	s.ErrorIs(err, model.ErrCredentialNotFound)
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
