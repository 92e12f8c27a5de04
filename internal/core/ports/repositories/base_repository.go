package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager lets a service group several repository calls into one
// database transaction.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryWithTx marks repositories that expose transaction management.
type RepositoryWithTx interface {
	TransactionManager
}
