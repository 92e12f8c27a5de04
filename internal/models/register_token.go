package models

import "time"

// RegisterToken is the database shape of a register (POS terminal) token.
// Only the SHA-256 hash of the token value is persisted.
type RegisterToken struct {
	TokenID    string     `db:"token_id"`
	UserID     string     `db:"user_id"`
	CompanyID  string     `db:"company_id"`
	Name       string     `db:"name"`
	TokenHash  string     `db:"token_hash"`
	LastUsedAt *time.Time `db:"last_used_at"`
	ExpiresAt  *time.Time `db:"expires_at"`
	RevokedAt  *time.Time `db:"revoked_at"`
	AuditFields
}
