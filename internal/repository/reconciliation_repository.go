package repository

import (
	"context"
	"database/sql"

	"ledger-recon/internal/domain"
	"ledger-recon/pkg/logger"
)

// ReconciliationRepository stores reconciliation report snapshots.
// Reports are append-only; there is no update or delete.
type ReconciliationRepository interface {
	Create(ctx context.Context, report *domain.ReconciliationReport) error
	GetByID(ctx context.Context, id int64) (*domain.ReconciliationReport, error)
	ListByBankAccount(ctx context.Context, bankAccount string) ([]domain.ReconciliationReport, error)
}

type reconciliationRepository struct {
	q querier
}

const reportColumns = `id, run_id, bank_account, reconciliation_date, book_balance, book_balance_computed,
	bank_balance, adjusted_book_balance, adjusted_bank_balance, matched_count,
	unmatched_book_count, unmatched_bank_count, status, preparer, created_at`

func (r *reconciliationRepository) Create(ctx context.Context, report *domain.ReconciliationReport) error {
	query := `
		INSERT INTO reconciliation_reports (
			run_id, bank_account, reconciliation_date, book_balance, book_balance_computed,
			bank_balance, adjusted_book_balance, adjusted_bank_balance, matched_count,
			unmatched_book_count, unmatched_bank_count, status, preparer
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`

	err := r.q.QueryRowContext(
		ctx,
		query,
		report.RunID,
		report.BankAccount,
		report.ReconciliationDate,
		report.BookBalance,
		report.BookBalanceComputed,
		report.BankBalance,
		report.AdjustedBookBalance,
		report.AdjustedBankBalance,
		report.MatchedCount,
		report.UnmatchedBookCount,
		report.UnmatchedBankCount,
		report.Status,
		report.Preparer,
	).Scan(&report.ID, &report.CreatedAt)

	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to create reconciliation report")
		return domain.NewPersistenceError("create reconciliation report", err)
	}

	return nil
}

func (r *reconciliationRepository) GetByID(ctx context.Context, id int64) (*domain.ReconciliationReport, error) {
	query := `SELECT ` + reportColumns + ` FROM reconciliation_reports WHERE id = $1`

	report, err := scanReport(r.q.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("reconciliation report", id)
	}
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to get reconciliation report")
		return nil, domain.NewPersistenceError("get reconciliation report", err)
	}
	return report, nil
}

func (r *reconciliationRepository) ListByBankAccount(ctx context.Context, bankAccount string) ([]domain.ReconciliationReport, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reconciliation_reports
		WHERE bank_account = $1
		ORDER BY reconciliation_date DESC, id DESC
	`

	rows, err := r.q.QueryContext(ctx, query, bankAccount)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to query reconciliation reports")
		return nil, domain.NewPersistenceError("query reconciliation reports", err)
	}
	defer rows.Close()

	var reports []domain.ReconciliationReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, domain.NewPersistenceError("scan reconciliation report", err)
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("query reconciliation reports", err)
	}
	return reports, nil
}

func scanReport(row rowScanner) (*domain.ReconciliationReport, error) {
	var report domain.ReconciliationReport
	err := row.Scan(
		&report.ID,
		&report.RunID,
		&report.BankAccount,
		&report.ReconciliationDate,
		&report.BookBalance,
		&report.BookBalanceComputed,
		&report.BankBalance,
		&report.AdjustedBookBalance,
		&report.AdjustedBankBalance,
		&report.MatchedCount,
		&report.UnmatchedBookCount,
		&report.UnmatchedBankCount,
		&report.Status,
		&report.Preparer,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	report.ReconciliationDate = domain.DateOf(report.ReconciliationDate)
	return &report, nil
}
