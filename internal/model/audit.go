package model

import "time"

// AuditRecord is one immutable entry in the audit log. Records are append-only:
// the storage layer exposes no update or delete for them.
type AuditRecord struct {
	// ID is assigned by storage on append, monotonically increasing
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	KeyID     string    `json:"key_id"`
	Role      Role      `json:"role"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	Origin    string    `json:"origin"`
}
