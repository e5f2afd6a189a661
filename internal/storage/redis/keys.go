package redis

import "fmt"

// Key prefix for all control-plane data
const keyPrefix = "craftdeck"

// credentialKey returns the Redis key for a stored Credential
func credentialKey(key string) string {
	return fmt.Sprintf("%s:credential:%s", keyPrefix, key)
}

// credentialIndexKey returns the Redis key for the SET of all credential keys
func credentialIndexKey() string {
	return fmt.Sprintf("%s:idx:credentials", keyPrefix)
}

// auditLogKey returns the Redis key for the audit record LIST
func auditLogKey() string {
	return fmt.Sprintf("%s:audit:log", keyPrefix)
}

// auditIDKey returns the Redis key for the audit ID counter
func auditIDKey() string {
	return fmt.Sprintf("%s:audit:id", keyPrefix)
}
