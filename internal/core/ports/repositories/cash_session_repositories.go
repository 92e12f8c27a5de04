package repositories

import (
	"context"

	"github.com/velorapos/velora_backend/internal/core/domain"
)

// CashSessionReader defines read operations for register sessions.
type CashSessionReader interface {
	// FindSessionByID retrieves a cash session by ID.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.CashSession, error)

	// FindOpenSessionByPointOfSale retrieves the open session of a register,
	// or ErrNotFound when the register is closed.
	FindOpenSessionByPointOfSale(ctx context.Context, companyID, pointOfSaleID string) (*domain.CashSession, error)
}

// CashSessionWriter defines write operations for register sessions.
type CashSessionWriter interface {
	SaveSession(ctx context.Context, session domain.CashSession) error

	// CloseSession stamps closedAt and the close amounts on an open session.
	CloseSession(ctx context.Context, session domain.CashSession) error
}

// CashSessionRepositoryFacade combines all cash session repository interfaces.
type CashSessionRepositoryFacade interface {
	CashSessionReader
	CashSessionWriter
}
