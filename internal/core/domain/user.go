package domain

import "time"

// User represents an acting user of the platform. The ledger core only cares
// that the referenced user resolves and is active (not soft-deleted).
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// CanAct reports whether the user may author ledger writes.
func (u User) CanAct() bool {
	return u.IsActive && u.DeletedAt == nil
}
