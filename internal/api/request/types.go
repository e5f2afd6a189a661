package request

// IssueKeyRequest is the request body for issuing a credential
type IssueKeyRequest struct {
	PlayerName string `json:"player_name,omitempty"`
	Role       string `json:"role"`
}

// ExecRequest is the request body for running a console command
type ExecRequest struct {
	Command string `json:"command"`
}
