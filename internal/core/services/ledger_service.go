package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/velorapos/velora_backend/internal/apperrors"
	"github.com/velorapos/velora_backend/internal/core/domain"
	portsrepo "github.com/velorapos/velora_backend/internal/core/ports/repositories"
	portssvc "github.com/velorapos/velora_backend/internal/core/ports/services"
	"github.com/velorapos/velora_backend/internal/utils/accounting"
)

// ledgerService replays the confirmed transaction log into per-account
// balances and an ordered posting feed. Balances are never stored; every call
// derives them from scratch.
type ledgerService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryWithTx
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewLedgerService creates the ledger builder.
func NewLedgerService(
	txnRepo portsrepo.TransactionRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	authorizer portssvc.CompanyAuthorizerSvc,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// BuildLedger replays every CONFIRMED transaction of a company through the
// posting rules. Raw balances accumulate debit-positive; presentation sign
// handling is applied later, exactly once, by callers that display balances.
func (s *ledgerService) BuildLedger(ctx context.Context, companyID string, requestingUserID string) (*domain.Ledger, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccountsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]*domain.Account, len(accounts))
	for i := range accounts {
		byCode[accounts[i].Code] = &accounts[i]
	}

	txns, err := s.txnRepo.ListConfirmedByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	balances := make(map[string]decimal.Decimal, len(accounts))
	var postings []domain.Posting
	for _, txn := range txns {
		rule, err := accounting.ResolvePostingRule(txn.Type, txn.Metadata)
		if err != nil {
			return nil, fmt.Errorf("%w: transaction %s: %s", apperrors.ErrUnsupported, txn.TransactionID, err)
		}
		for _, effect := range rule.Effects {
			account, ok := byCode[effect.AccountCode]
			if !ok {
				return nil, fmt.Errorf("%w: account code %s is not in the chart of accounts of company %s",
					apperrors.ErrReference, effect.AccountCode, companyID)
			}
			posting := domain.Posting{
				AccountID:   account.AccountID,
				AccountCode: account.Code,
				Date:        txn.CreatedAt,
				Reference:   txn.DocumentNumber,
				Description: string(txn.Type),
			}
			if effect.Side == accounting.DebitSide {
				posting.Debit = txn.Total
				balances[account.AccountID] = balances[account.AccountID].Add(txn.Total)
			} else {
				posting.Credit = txn.Total
				balances[account.AccountID] = balances[account.AccountID].Sub(txn.Total)
			}
			postings = append(postings, posting)
		}
	}

	tree := buildAccountTree(accounts, balances)
	return &domain.Ledger{
		Accounts:         tree,
		Postings:         postings,
		BalanceByAccount: balances,
	}, nil
}

// buildAccountTree arranges accounts into their parent/child hierarchy and
// rolls raw balances up the tree. Children sort by code at every level.
func buildAccountTree(accounts []domain.Account, balances map[string]decimal.Decimal) []*domain.LedgerAccount {
	nodes := make(map[string]*domain.LedgerAccount, len(accounts))
	for _, a := range accounts {
		nodes[a.AccountID] = &domain.LedgerAccount{
			Account:    a,
			RawBalance: balances[a.AccountID],
		}
	}

	var roots []*domain.LedgerAccount
	for _, node := range nodes {
		if node.ParentAccountID != nil {
			if parent, ok := nodes[*node.ParentAccountID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	var rollUp func(n *domain.LedgerAccount) decimal.Decimal
	rollUp = func(n *domain.LedgerAccount) decimal.Decimal {
		sum := n.RawBalance
		sort.Slice(n.Children, func(i, j int) bool { return n.Children[i].Code < n.Children[j].Code })
		for _, child := range n.Children {
			sum = sum.Add(rollUp(child))
		}
		n.RolledUpBalance = sum
		return sum
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].Code < roots[j].Code })
	for _, root := range roots {
		rollUp(root)
	}
	return roots
}
