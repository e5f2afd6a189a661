package model

import "time"

// RootKeyID is the sentinel credential ID used for the root principal.
// The root secret itself is never stored.
const RootKeyID = "ROOT"

// Credential represents an issued access token
type Credential struct {
	// Key is the opaque bearer token itself, also the primary identifier
	Key       string    `json:"key"`
	Role      Role      `json:"role"`
	Owner     string    `json:"owner,omitempty"` // bound player identity, empty for ownerless keys
	CreatedAt time.Time `json:"created_at"`
}

// Principal is the authenticated identity resolved from a credential for one
// request. Constructed fresh per request, never persisted.
type Principal struct {
	KeyID  string
	Role   Role
	Owner  string
	Origin string // remote address of the request
}

// IsRoot reports whether the principal was authenticated via the root secret
func (p *Principal) IsRoot() bool {
	return p.KeyID == RootKeyID
}
