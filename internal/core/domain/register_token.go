package domain

import "time"

// RegisterToken authenticates a POS terminal. Only the SHA-256 hash of the
// token is stored; the raw value is shown once at creation.
type RegisterToken struct {
	TokenID    string     `json:"tokenID"`
	UserID     string     `json:"userID"`
	CompanyID  string     `json:"companyID"`
	Name       string     `json:"name"`
	TokenHash  string     `json:"-"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	AuditFields
}

// IsUsable reports whether the token can still authenticate requests.
func (t RegisterToken) IsUsable(now time.Time) bool {
	if t.RevokedAt != nil {
		return false
	}
	if t.ExpiresAt != nil && now.After(*t.ExpiresAt) {
		return false
	}
	return true
}
