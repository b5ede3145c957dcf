package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"ledger-recon/internal/domain"
	"ledger-recon/pkg/logger"
)

type BankTransactionRepository interface {
	Create(ctx context.Context, tx *domain.BankTransaction) error
	BulkCreate(ctx context.Context, transactions []domain.BankTransaction) error
	GetByID(ctx context.Context, id int64) (*domain.BankTransaction, error)
	Find(ctx context.Context, filter domain.BankTransactionFilter) ([]domain.BankTransaction, error)
	UpdateMatch(ctx context.Context, tx *domain.BankTransaction) error
	Delete(ctx context.Context, id int64) error
	MatchedEntryIDs(ctx context.Context, bankAccount string) (map[int64]bool, error)
	Statistics(ctx context.Context, bankAccount string) (*domain.BankStatistics, error)
}

type bankTransactionRepository struct {
	q querier
}

const bankTransactionColumns = `id, bank_account, bank_name, transaction_date, transaction_no, type,
	amount, balance, counterpart_name, counterpart_account, purpose, status,
	matched_entry_id, reconciliation_date, created_at, updated_at`

const insertBankTransaction = `
	INSERT INTO bank_transactions (
		bank_account, bank_name, transaction_date, transaction_no, type, amount, balance,
		counterpart_name, counterpart_account, purpose, status
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING id, created_at, updated_at
`

func (r *bankTransactionRepository) Create(ctx context.Context, tx *domain.BankTransaction) error {
	if tx.Status == "" {
		tx.Status = domain.Unmatched
	}

	err := r.q.QueryRowContext(
		ctx,
		insertBankTransaction,
		tx.BankAccount,
		tx.BankName,
		domain.DateOf(tx.TransactionDate),
		tx.TransactionNo,
		tx.Type,
		tx.Amount,
		tx.Balance,
		tx.CounterpartName,
		tx.CounterpartAccount,
		tx.Purpose,
		tx.Status,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)

	if err != nil {
		logger.GetLogger().WithError(err).WithField("transaction_no", tx.TransactionNo).Error("Failed to create bank transaction")
		return domain.NewPersistenceError("create bank transaction", err)
	}

	return nil
}

// BulkCreate inserts every transaction or none. Callers wrap it in WithinTx.
func (r *bankTransactionRepository) BulkCreate(ctx context.Context, transactions []domain.BankTransaction) error {
	for i := range transactions {
		if err := r.Create(ctx, &transactions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *bankTransactionRepository) GetByID(ctx context.Context, id int64) (*domain.BankTransaction, error) {
	query := `SELECT ` + bankTransactionColumns + ` FROM bank_transactions WHERE id = $1`

	tx, err := scanBankTransaction(r.q.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("bank transaction", id)
	}
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to get bank transaction")
		return nil, domain.NewPersistenceError("get bank transaction", err)
	}
	return tx, nil
}

func (r *bankTransactionRepository) Find(ctx context.Context, filter domain.BankTransactionFilter) ([]domain.BankTransaction, error) {
	var conds []string
	var args []interface{}

	if filter.BankAccount != "" {
		args = append(args, filter.BankAccount)
		conds = append(conds, fmt.Sprintf("bank_account = $%d", len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, domain.DateOf(filter.From))
		conds = append(conds, fmt.Sprintf("transaction_date >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, domain.DateOf(filter.To))
		conds = append(conds, fmt.Sprintf("transaction_date <= $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + bankTransactionColumns + ` FROM bank_transactions`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to query bank transactions")
		return nil, domain.NewPersistenceError("query bank transactions", err)
	}
	defer rows.Close()

	var transactions []domain.BankTransaction
	for rows.Next() {
		tx, err := scanBankTransaction(rows)
		if err != nil {
			return nil, domain.NewPersistenceError("scan bank transaction", err)
		}
		transactions = append(transactions, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("query bank transactions", err)
	}

	return transactions, nil
}

func (r *bankTransactionRepository) UpdateMatch(ctx context.Context, tx *domain.BankTransaction) error {
	query := `
		UPDATE bank_transactions
		SET status = $1, matched_entry_id = $2, reconciliation_date = $3, updated_at = NOW()
		WHERE id = $4
	`

	res, err := r.q.ExecContext(ctx, query, tx.Status, tx.MatchedEntryID, tx.ReconciliationDate, tx.ID)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("transaction_id", tx.ID).Error("Failed to update bank transaction")
		return domain.NewPersistenceError("update bank transaction", err)
	}
	return checkAffected(res, "bank transaction", tx.ID)
}

func (r *bankTransactionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM bank_transactions WHERE id = $1`, id)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("transaction_id", id).Error("Failed to delete bank transaction")
		return domain.NewPersistenceError("delete bank transaction", err)
	}
	return checkAffected(res, "bank transaction", id)
}

func (r *bankTransactionRepository) MatchedEntryIDs(ctx context.Context, bankAccount string) (map[int64]bool, error) {
	query := `
		SELECT DISTINCT matched_entry_id
		FROM bank_transactions
		WHERE bank_account = $1 AND matched_entry_id IS NOT NULL
	`

	rows, err := r.q.QueryContext(ctx, query, bankAccount)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to query matched entry ids")
		return nil, domain.NewPersistenceError("query matched entries", err)
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, domain.NewPersistenceError("scan matched entry", err)
		}
		ids[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("query matched entries", err)
	}
	return ids, nil
}

func (r *bankTransactionRepository) Statistics(ctx context.Context, bankAccount string) (*domain.BankStatistics, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'MATCHED'),
			COUNT(*) FILTER (WHERE status = 'UNMATCHED'),
			COUNT(*) FILTER (WHERE status = 'OUTSTANDING')
		FROM bank_transactions
		WHERE $1 = '' OR bank_account = $1
	`

	stats := &domain.BankStatistics{BankAccount: bankAccount}
	err := r.q.QueryRowContext(ctx, query, bankAccount).Scan(
		&stats.Total,
		&stats.Matched,
		&stats.Unmatched,
		&stats.Outstanding,
	)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to compute bank statistics")
		return nil, domain.NewPersistenceError("bank statistics", err)
	}
	return stats, nil
}

func scanBankTransaction(row rowScanner) (*domain.BankTransaction, error) {
	var tx domain.BankTransaction
	var matchedEntryID sql.NullInt64
	var reconciliationDate sql.NullTime

	err := row.Scan(
		&tx.ID,
		&tx.BankAccount,
		&tx.BankName,
		&tx.TransactionDate,
		&tx.TransactionNo,
		&tx.Type,
		&tx.Amount,
		&tx.Balance,
		&tx.CounterpartName,
		&tx.CounterpartAccount,
		&tx.Purpose,
		&tx.Status,
		&matchedEntryID,
		&reconciliationDate,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.TransactionDate = domain.DateOf(tx.TransactionDate)
	if matchedEntryID.Valid {
		tx.MatchedEntryID = &matchedEntryID.Int64
	}
	if reconciliationDate.Valid {
		day := domain.DateOf(reconciliationDate.Time)
		tx.ReconciliationDate = &day
	}
	return &tx, nil
}
