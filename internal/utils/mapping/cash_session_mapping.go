package mapping

import (
	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/models"
)

// ToModelCashSession converts a domain CashSession to a model CashSession
func ToModelCashSession(d domain.CashSession) models.CashSession {
	return models.CashSession{
		SessionID:      d.SessionID,
		CompanyID:      d.CompanyID,
		PointOfSaleID:  d.PointOfSaleID,
		UserID:         d.UserID,
		Status:         string(d.Status),
		OpeningAmount:  d.OpeningAmount,
		ExpectedAmount: d.ExpectedAmount,
		DeclaredAmount: d.DeclaredAmount,
		Deviation:      d.Deviation,
		OpenedAt:       d.OpenedAt,
		ClosedAt:       d.ClosedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashSession converts a model CashSession to a domain CashSession
func ToDomainCashSession(m models.CashSession) domain.CashSession {
	return domain.CashSession{
		SessionID:      m.SessionID,
		CompanyID:      m.CompanyID,
		PointOfSaleID:  m.PointOfSaleID,
		UserID:         m.UserID,
		Status:         domain.CashSessionStatus(m.Status),
		OpeningAmount:  m.OpeningAmount,
		ExpectedAmount: m.ExpectedAmount,
		DeclaredAmount: m.DeclaredAmount,
		Deviation:      m.Deviation,
		OpenedAt:       m.OpenedAt,
		ClosedAt:       m.ClosedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
