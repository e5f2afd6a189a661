package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Credential:
		o.printCredential(v)
	case CredentialList:
		o.printCredentialList(v)
	case DeletedKey:
		fmt.Printf("Revoked: %s\n", v.Deleted)
	case CommandResult:
		o.printCommandResult(v)
	case CommandHistory:
		o.printCommandHistory(v)
	case AuditLog:
		o.printAuditLog(v)
	case PlayerAction:
		fmt.Printf("%s: %s\n", v.Player, v.Output)
	case CommandOutput:
		fmt.Println(v.Output)
	case Whitelist:
		o.printWhitelist(v)
	case OnlinePlayers:
		o.printOnlinePlayers(v)
	case PlayerData:
		fmt.Printf("Player: %s\n%s\n", v.Player, v.RawNBT)
	case ServerStatus:
		fmt.Printf("Status: %s\n", v.Status)
	case ServerLogs:
		o.printServerLogs(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Credential response type (matches API)
type Credential struct {
	Key       string    `json:"key"`
	Role      string    `json:"role"`
	Owner     string    `json:"owner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CredentialList response type
type CredentialList struct {
	Keys []Credential `json:"keys"`
}

// DeletedKey response type
type DeletedKey struct {
	Deleted string `json:"deleted"`
}

// CommandResult response type
type CommandResult struct {
	Timestamp time.Time `json:"timestamp"`
	Command   string    `json:"command"`
	Output    string    `json:"output"`
}

// CommandHistory response type
type CommandHistory struct {
	History []CommandResult `json:"history"`
}

// AuditRecord response type
type AuditRecord struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	KeyID     string    `json:"key_id"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	Origin    string    `json:"origin"`
}

// AuditLog response type
type AuditLog struct {
	Logs []AuditRecord `json:"logs"`
}

// PlayerAction response type
type PlayerAction struct {
	Player string `json:"player"`
	Output string `json:"output"`
}

// CommandOutput response type
type CommandOutput struct {
	Output string `json:"output"`
}

// Whitelist response type
type Whitelist struct {
	Players   []string `json:"players"`
	RawOutput string   `json:"raw_output"`
}

// OnlinePlayers response type
type OnlinePlayers struct {
	Count   int      `json:"count"`
	Players []string `json:"players"`
}

// PlayerData response type
type PlayerData struct {
	Player string `json:"player"`
	RawNBT string `json:"raw_nbt"`
}

// ServerStatus response type
type ServerStatus struct {
	Status string `json:"status"`
}

// ServerLogs response type
type ServerLogs struct {
	Logs    string `json:"logs"`
	Message string `json:"message,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printCredential(c Credential) {
	fmt.Printf("Key: %s\n", c.Key)
	fmt.Printf("Role: %s\n", c.Role)
	if c.Owner != "" {
		fmt.Printf("Owner: %s\n", c.Owner)
	}
	if !c.CreatedAt.IsZero() {
		fmt.Printf("Created: %s\n", c.CreatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printCredentialList(l CredentialList) {
	fmt.Printf("Keys (%d):\n", len(l.Keys))
	for _, c := range l.Keys {
		owner := ""
		if c.Owner != "" {
			owner = " - " + c.Owner
		}
		fmt.Printf("  - %s [%s]%s\n", c.Key, c.Role, owner)
	}
}

func (o *Output) printCommandResult(r CommandResult) {
	fmt.Printf("> %s\n", r.Command)
	if r.Output != "" {
		fmt.Println(r.Output)
	}
}

func (o *Output) printCommandHistory(h CommandHistory) {
	fmt.Printf("History (%d):\n", len(h.History))
	for _, r := range h.History {
		fmt.Printf("  [%s] %s\n", r.Timestamp.Format(time.RFC3339), r.Command)
		if r.Output != "" {
			fmt.Printf("      %s\n", r.Output)
		}
	}
}

func (o *Output) printAuditLog(l AuditLog) {
	fmt.Printf("Audit records (%d):\n", len(l.Logs))
	for _, r := range l.Logs {
		fmt.Printf("  [%s] %s %s (%s) %s\n",
			r.Timestamp.Format(time.RFC3339), r.Action, r.KeyID, r.Role, r.Detail)
	}
}

func (o *Output) printWhitelist(w Whitelist) {
	if len(w.Players) == 0 {
		fmt.Println("Whitelist is empty")
		return
	}
	fmt.Printf("Whitelisted (%d): %s\n", len(w.Players), strings.Join(w.Players, ", "))
}

func (o *Output) printOnlinePlayers(p OnlinePlayers) {
	if p.Count == 0 {
		fmt.Println("No players online")
		return
	}
	fmt.Printf("Online (%d): %s\n", p.Count, strings.Join(p.Players, ", "))
}

func (o *Output) printServerLogs(l ServerLogs) {
	if l.Message != "" {
		fmt.Println(l.Message)
	}
	if l.Logs != "" {
		fmt.Println(l.Logs)
	}
}
