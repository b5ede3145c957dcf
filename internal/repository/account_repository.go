package repository

import (
	"context"
	"database/sql"

	"ledger-recon/internal/domain"
	"ledger-recon/pkg/logger"
)

type AccountRepository interface {
	Create(ctx context.Context, acc *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByCode(ctx context.Context, code string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
}

type accountRepository struct {
	q querier
}

const accountColumns = `id, code, name, type, normal_side, parent_id, enabled, created_at, updated_at`

func (r *accountRepository) Create(ctx context.Context, acc *domain.Account) error {
	query := `
		INSERT INTO accounts (code, name, type, normal_side, parent_id, enabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.q.QueryRowContext(
		ctx,
		query,
		acc.Code,
		acc.Name,
		acc.Type,
		acc.NormalSide,
		acc.ParentID,
		acc.Enabled,
	).Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt)

	if err != nil {
		logger.GetLogger().WithError(err).WithField("code", acc.Code).Error("Failed to create account")
		return domain.NewPersistenceError("create account", err)
	}

	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	acc, err := scanAccount(r.q.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("account", id)
	}
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to get account")
		return nil, domain.NewPersistenceError("get account", err)
	}
	return acc, nil
}

func (r *accountRepository) GetByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE code = $1`
	acc, err := scanAccount(r.q.QueryRowContext(ctx, query, code))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("account", code)
	}
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to get account by code")
		return nil, domain.NewPersistenceError("get account", err)
	}
	return acc, nil
}

func (r *accountRepository) List(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY code`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to query accounts")
		return nil, domain.NewPersistenceError("list accounts", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, domain.NewPersistenceError("scan account", err)
		}
		accounts = append(accounts, *acc)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("list accounts", err)
	}
	return accounts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var acc domain.Account
	var parentID sql.NullInt64
	err := row.Scan(
		&acc.ID,
		&acc.Code,
		&acc.Name,
		&acc.Type,
		&acc.NormalSide,
		&parentID,
		&acc.Enabled,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		acc.ParentID = &parentID.Int64
	}
	return &acc, nil
}
