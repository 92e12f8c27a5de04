package mapping

import (
	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/models"
)

// ToModelRegisterToken converts a domain RegisterToken to a model RegisterToken
func ToModelRegisterToken(d domain.RegisterToken) models.RegisterToken {
	return models.RegisterToken{
		TokenID:     d.TokenID,
		UserID:      d.UserID,
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		TokenHash:   d.TokenHash,
		LastUsedAt:  d.LastUsedAt,
		ExpiresAt:   d.ExpiresAt,
		RevokedAt:   d.RevokedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRegisterToken converts a model RegisterToken to a domain RegisterToken
func ToDomainRegisterToken(m models.RegisterToken) domain.RegisterToken {
	return domain.RegisterToken{
		TokenID:     m.TokenID,
		UserID:      m.UserID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		TokenHash:   m.TokenHash,
		LastUsedAt:  m.LastUsedAt,
		ExpiresAt:   m.ExpiresAt,
		RevokedAt:   m.RevokedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRegisterTokenSlice converts a slice of model RegisterTokens to a slice of domain RegisterTokens
func ToDomainRegisterTokenSlice(ms []models.RegisterToken) []domain.RegisterToken {
	ds := make([]domain.RegisterToken, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRegisterToken(m)
	}
	return ds
}
