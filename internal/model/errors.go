package model

import "errors"

// Common errors used across the application
var (
	// Credential errors
	ErrCredentialNotFound = errors.New("credential not found")

	// Player errors
	ErrPlayerNotOnline = errors.New("player not online")
)
