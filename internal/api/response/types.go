package response

import (
	"time"

	"github.com/craftdeck/craftdeck/internal/model"
)

// Credential represents a credential record in API responses. Key is the
// plaintext bearer token: issuance is the only place a key is minted, and
// listing is root-gated.
type Credential struct {
	Key       string    `json:"key"`
	Role      string    `json:"role"`
	Owner     string    `json:"owner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CredentialFromModel converts a model.Credential to a response Credential
func CredentialFromModel(c *model.Credential) Credential {
	return Credential{
		Key:       c.Key,
		Role:      string(c.Role),
		Owner:     c.Owner,
		CreatedAt: c.CreatedAt,
	}
}

// CredentialList is the response for listing credentials
type CredentialList struct {
	Keys []Credential `json:"keys"`
}

// CredentialListFromModel converts a slice of credentials
func CredentialListFromModel(creds []*model.Credential) CredentialList {
	keys := make([]Credential, len(creds))
	for i, c := range creds {
		keys[i] = CredentialFromModel(c)
	}
	return CredentialList{Keys: keys}
}

// DeletedKey is the response after revoking a credential
type DeletedKey struct {
	Deleted string `json:"deleted"`
}

// CommandResult represents one executed console command
type CommandResult struct {
	Timestamp time.Time `json:"timestamp"`
	Command   string    `json:"command"`
	Output    string    `json:"output"`
}

// CommandResultFromModel converts a model.CommandRecord
func CommandResultFromModel(r model.CommandRecord) CommandResult {
	return CommandResult{
		Timestamp: r.Timestamp,
		Command:   r.Command,
		Output:    r.Output,
	}
}

// CommandHistory is the response for the command history view
type CommandHistory struct {
	History []CommandResult `json:"history"`
}

// CommandHistoryFromModel converts a slice of command records
func CommandHistoryFromModel(records []model.CommandRecord) CommandHistory {
	history := make([]CommandResult, len(records))
	for i, r := range records {
		history[i] = CommandResultFromModel(r)
	}
	return CommandHistory{History: history}
}

// AuditRecord represents one audit entry in API responses
type AuditRecord struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	KeyID     string    `json:"key_id"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	Origin    string    `json:"origin"`
}

// AuditLog is the response for the audit query
type AuditLog struct {
	Logs []AuditRecord `json:"logs"`
}

// AuditLogFromModel converts a slice of audit records
func AuditLogFromModel(records []*model.AuditRecord) AuditLog {
	logs := make([]AuditRecord, len(records))
	for i, r := range records {
		logs[i] = AuditRecord{
			ID:        r.ID,
			Timestamp: r.Timestamp,
			KeyID:     r.KeyID,
			Role:      string(r.Role),
			Action:    r.Action,
			Detail:    r.Detail,
			Origin:    r.Origin,
		}
	}
	return AuditLog{Logs: logs}
}

// PlayerAction is the response for a whitelist/op action on one player
type PlayerAction struct {
	Player string `json:"player"`
	Output string `json:"output"`
}

// CommandOutput is the response for actions that only return server text
type CommandOutput struct {
	Output string `json:"output"`
}

// Whitelist is the response for the whitelist view
type Whitelist struct {
	Players   []string `json:"players"`
	RawOutput string   `json:"raw_output"`
}

// OnlinePlayers is the response for the online player list
type OnlinePlayers struct {
	Count   int      `json:"count"`
	Players []string `json:"players"`
}

// PlayerData is the response for a single player's data dump
type PlayerData struct {
	Player string `json:"player"`
	RawNBT string `json:"raw_nbt"`
}

// ServerStatus is the response for the managed server's status
type ServerStatus struct {
	Status string `json:"status"`
}

// ServerLogs is the response for the log view
type ServerLogs struct {
	Logs    string `json:"logs"`
	Message string `json:"message,omitempty"`
}
