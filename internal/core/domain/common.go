package domain

import "time"

// AuditFields carries who and when for every persisted entity. Created* never
// change after insert; LastUpdated* move with the single sanctioned mutations
// (status flips, session closes, soft deletes).
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
