package model

// Role is the access tier granted by a credential
type Role string

const (
	// RoleRoot is the unrestricted tier, held only by the configured root secret
	RoleRoot Role = "root"
	// RoleAdmin is the elevated tier (operator grants, server control)
	RoleAdmin Role = "admin"
	// RolePlayer is the baseline tier
	RolePlayer Role = "player"
)

// ValidIssuableRole reports whether r can be assigned to an issued credential.
// Root is never issuable: it exists only as the configured secret.
func ValidIssuableRole(r Role) bool {
	return r == RoleAdmin || r == RolePlayer
}

// In reports whether r is one of the given roles. Root satisfies every gate.
func (r Role) In(roles ...Role) bool {
	if r == RoleRoot {
		return true
	}
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}
