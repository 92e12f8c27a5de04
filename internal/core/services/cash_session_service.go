package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/velorapos/velora_backend/internal/apperrors"
	"github.com/velorapos/velora_backend/internal/core/domain"
	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/dto"
)

var (
	ErrRegisterAlreadyOpen = errors.New("register already has an open session")
	ErrSessionClosed       = errors.New("cash session is already closed")
)

// cashSessionService bounds register operating windows. The expected close
// amount is never tallied by hand: it is replayed from the session's
// confirmed transactions.
type cashSessionService struct {
	BaseService
	sessionRepo portsrepo.CashSessionRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryWithTx
}

// NewCashSessionService creates the register session service.
func NewCashSessionService(
	sessionRepo portsrepo.CashSessionRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryWithTx,
	authorizer portssvc.CompanyAuthorizerSvc,
) portssvc.CashSessionSvcFacade {
	return &cashSessionService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		sessionRepo: sessionRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.CashSessionSvcFacade = (*cashSessionService)(nil)

// OpenSession opens a register for business. At most one session per register
// may be open.
func (s *cashSessionService) OpenSession(ctx context.Context, companyID string, req dto.OpenCashSessionRequest, userID string) (*domain.CashSession, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}
	if req.OpeningAmount.IsNegative() {
		return nil, fmt.Errorf("%w: opening amount must not be negative", apperrors.ErrValidation)
	}

	_, err := s.sessionRepo.FindOpenSessionByPointOfSale(ctx, companyID, req.PointOfSaleID)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrState, ErrRegisterAlreadyOpen)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	session := domain.CashSession{
		SessionID:     uuid.NewString(),
		CompanyID:     companyID,
		PointOfSaleID: req.PointOfSaleID,
		UserID:        userID,
		Status:        domain.SessionOpen,
		OpeningAmount: req.OpeningAmount,
		OpenedAt:      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "failed to open cash session",
			slog.String("point_of_sale_id", req.PointOfSaleID))
		return nil, err
	}
	s.LogInfo(ctx, "cash session opened",
		slog.String("session_id", session.SessionID),
		slog.String("point_of_sale_id", req.PointOfSaleID))
	return &session, nil
}

// CloseSession closes a register: the expected amount is replayed from the
// session's confirmed cash movements, the deviation is declared minus
// expected, and the session becomes immutable.
func (s *cashSessionService) CloseSession(ctx context.Context, companyID string, sessionID string, req dto.CloseCashSessionRequest, userID string) (*domain.CashSession, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	if !session.IsOpen() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrState, ErrSessionClosed)
	}

	cashMoved, err := s.txnRepo.SumCashSessionCash(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	expected := session.OpeningAmount.Add(cashMoved)
	deviation := req.DeclaredAmount.Sub(expected)
	now := time.Now().UTC()

	session.Status = domain.SessionClosed
	session.ExpectedAmount = &expected
	session.DeclaredAmount = &req.DeclaredAmount
	session.Deviation = &deviation
	session.ClosedAt = &now
	session.LastUpdatedAt = now
	session.LastUpdatedBy = userID

	if err := s.sessionRepo.CloseSession(ctx, *session); err != nil {
		s.LogError(ctx, err, "failed to close cash session",
			slog.String("session_id", sessionID))
		return nil, err
	}
	s.LogInfo(ctx, "cash session closed",
		slog.String("session_id", sessionID),
		slog.String("expected", expected.String()),
		slog.String("declared", req.DeclaredAmount.String()),
		slog.String("deviation", deviation.String()))
	return session, nil
}

// GetSessionByID retrieves a company's cash session.
func (s *cashSessionService) GetSessionByID(ctx context.Context, companyID string, sessionID string, requestingUserID string) (*domain.CashSession, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return session, nil
}
