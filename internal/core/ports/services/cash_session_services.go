package services

import (
	"context"

	"github.com/velorapos/velora_backend/internal/core/domain"
	"github.com/velorapos/velora_backend/internal/dto"
)

// CashSessionSvcFacade manages register operating windows.
type CashSessionSvcFacade interface {
	OpenSession(ctx context.Context, companyID string, req dto.OpenCashSessionRequest, userID string) (*domain.CashSession, error)
	CloseSession(ctx context.Context, companyID string, sessionID string, req dto.CloseCashSessionRequest, userID string) (*domain.CashSession, error)
	GetSessionByID(ctx context.Context, companyID string, sessionID string, requestingUserID string) (*domain.CashSession, error)
}
