package model

import "time"

// CommandRecord is the captured result of one console command. Held only in
// the bounded in-memory history; lost on restart.
type CommandRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Command   string    `json:"command"`
	Output    string    `json:"output"`
}
