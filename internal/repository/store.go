package repository

import (
	"context"
	"database/sql"
	"fmt"

	"ledger-recon/internal/domain"
	"ledger-recon/pkg/logger"
)

// Store groups the repositories that make up the persisted-entity store.
// WithinTx runs fn against repositories bound to one database transaction;
// any error returned by fn rolls the whole unit back.
type Store interface {
	Accounts() AccountRepository
	Journals() JournalRepository
	BankTransactions() BankTransactionRepository
	Reconciliations() ReconciliationRepository
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type postgresStore struct {
	db *sql.DB
	q  querier
	tx bool
}

func NewPostgresStore(db *sql.DB) Store {
	return &postgresStore{db: db, q: db}
}

func (s *postgresStore) Accounts() AccountRepository {
	return &accountRepository{q: s.q}
}

func (s *postgresStore) Journals() JournalRepository {
	return &journalRepository{q: s.q}
}

func (s *postgresStore) BankTransactions() BankTransactionRepository {
	return &bankTransactionRepository{q: s.q}
}

func (s *postgresStore) Reconciliations() ReconciliationRepository {
	return &reconciliationRepository{q: s.q}
}

func (s *postgresStore) WithinTx(ctx context.Context, fn func(tx Store) error) error {
	// Nested calls join the outer transaction
	if s.tx {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to begin transaction")
		return domain.NewPersistenceError("begin transaction", err)
	}
	defer tx.Rollback()

	if err := fn(&postgresStore{db: s.db, q: tx, tx: true}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.GetLogger().WithError(err).Error("Failed to commit transaction")
		return domain.NewPersistenceError("commit transaction", err)
	}

	return nil
}

func checkAffected(res sql.Result, resource string, id interface{}) error {
	n, err := res.RowsAffected()
	if err != nil {
		return domain.NewPersistenceError(fmt.Sprintf("update %s", resource), err)
	}
	if n == 0 {
		return domain.NewNotFoundError(resource, id)
	}
	return nil
}
