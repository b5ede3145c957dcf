package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"ledger-recon/internal/domain"
	"ledger-recon/pkg/logger"
)

type JournalRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) error
	Update(ctx context.Context, entry *domain.JournalEntry) error
	UpdateStatus(ctx context.Context, entry *domain.JournalEntry) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.JournalEntry, error)
	Find(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error)
	Latest(ctx context.Context, limit int) ([]domain.JournalEntry, error)
	// MaxVoucherSequence scans existing voucher numbers carrying prefix
	// and returns the highest numeric suffix, or 0.
	MaxVoucherSequence(ctx context.Context, prefix string) (int64, error)
	// NextVoucherSequence advances the persisted counter for prefix past
	// both its last value and the highest voucher already stored.
	NextVoucherSequence(ctx context.Context, prefix string) (int64, error)
}

type journalRepository struct {
	q querier
}

const entryColumns = `id, voucher_number, entry_date, description, total_amount, status,
	business_type, business_id, created_by, reviewed_by, reviewed_at, created_at, updated_at`

func (r *journalRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (
			voucher_number, entry_date, description, total_amount, status,
			business_type, business_id, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.q.QueryRowContext(
		ctx,
		query,
		entry.VoucherNumber,
		entry.EntryDate,
		entry.Description,
		entry.TotalAmount,
		entry.Status,
		entry.BusinessType,
		entry.BusinessID,
		entry.CreatedBy,
		entry.CreatedAt,
		entry.UpdatedAt,
	).Scan(&entry.ID)

	if err != nil {
		logger.GetLogger().WithError(err).WithField("voucher_number", entry.VoucherNumber).Error("Failed to create journal entry")
		return domain.NewPersistenceError("create journal entry", err)
	}

	return r.insertLines(ctx, entry)
}

func (r *journalRepository) Update(ctx context.Context, entry *domain.JournalEntry) error {
	query := `
		UPDATE journal_entries
		SET voucher_number = $1, entry_date = $2, description = $3, total_amount = $4,
			business_type = $5, business_id = $6, updated_at = $7
		WHERE id = $8
	`

	res, err := r.q.ExecContext(
		ctx,
		query,
		entry.VoucherNumber,
		entry.EntryDate,
		entry.Description,
		entry.TotalAmount,
		entry.BusinessType,
		entry.BusinessID,
		entry.UpdatedAt,
		entry.ID,
	)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("entry_id", entry.ID).Error("Failed to update journal entry")
		return domain.NewPersistenceError("update journal entry", err)
	}
	if err := checkAffected(res, "journal entry", entry.ID); err != nil {
		return err
	}

	if _, err := r.q.ExecContext(ctx, `DELETE FROM journal_lines WHERE entry_id = $1`, entry.ID); err != nil {
		logger.GetLogger().WithError(err).WithField("entry_id", entry.ID).Error("Failed to replace journal lines")
		return domain.NewPersistenceError("replace journal lines", err)
	}

	return r.insertLines(ctx, entry)
}

func (r *journalRepository) insertLines(ctx context.Context, entry *domain.JournalEntry) error {
	query := `
		INSERT INTO journal_lines (
			entry_id, line_no, account_id, side, amount, currency,
			exchange_rate, foreign_amount, remark, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	for i := range entry.Lines {
		line := &entry.Lines[i]
		line.EntryID = entry.ID

		var foreign decimal.NullDecimal
		if line.ForeignAmount != nil {
			foreign = decimal.NewNullDecimal(*line.ForeignAmount)
		}

		err := r.q.QueryRowContext(
			ctx,
			query,
			line.EntryID,
			line.LineNo,
			line.AccountID,
			line.Side,
			line.Amount,
			line.Currency,
			line.ExchangeRate,
			foreign,
			line.Remark,
			line.CreatedAt,
			line.UpdatedAt,
		).Scan(&line.ID)
		if err != nil {
			logger.GetLogger().WithError(err).WithFields(map[string]interface{}{
				"entry_id": entry.ID,
				"line_no":  line.LineNo,
			}).Error("Failed to insert journal line")
			return domain.NewPersistenceError("insert journal line", err)
		}
	}

	return nil
}

func (r *journalRepository) UpdateStatus(ctx context.Context, entry *domain.JournalEntry) error {
	query := `
		UPDATE journal_entries
		SET status = $1, reviewed_by = $2, reviewed_at = $3, updated_at = $4
		WHERE id = $5
	`

	res, err := r.q.ExecContext(ctx, query, entry.Status, entry.ReviewedBy, entry.ReviewedAt, entry.UpdatedAt, entry.ID)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("entry_id", entry.ID).Error("Failed to update journal status")
		return domain.NewPersistenceError("update journal status", err)
	}
	return checkAffected(res, "journal entry", entry.ID)
}

func (r *journalRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM journal_lines WHERE entry_id = $1`, id); err != nil {
		logger.GetLogger().WithError(err).WithField("entry_id", id).Error("Failed to delete journal lines")
		return domain.NewPersistenceError("delete journal lines", err)
	}

	res, err := r.q.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = $1`, id)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("entry_id", id).Error("Failed to delete journal entry")
		return domain.NewPersistenceError("delete journal entry", err)
	}
	return checkAffected(res, "journal entry", id)
}

func (r *journalRepository) GetByID(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE id = $1`

	entry, err := scanEntry(r.q.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("journal entry", id)
	}
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to get journal entry")
		return nil, domain.NewPersistenceError("get journal entry", err)
	}

	entries := []domain.JournalEntry{*entry}
	if err := r.attachLines(ctx, entries); err != nil {
		return nil, err
	}
	return &entries[0], nil
}

func (r *journalRepository) Find(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	var conds []string
	var args []interface{}

	if !filter.From.IsZero() {
		args = append(args, domain.DateOf(filter.From))
		conds = append(conds, fmt.Sprintf("entry_date >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, domain.DateOf(filter.To))
		conds = append(conds, fmt.Sprintf("entry_date <= $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY entry_date, id`

	return r.queryEntries(ctx, query, args...)
}

func (r *journalRepository) Latest(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries ORDER BY created_at DESC, id DESC LIMIT $1`
	return r.queryEntries(ctx, query, limit)
}

func (r *journalRepository) queryEntries(ctx context.Context, query string, args ...interface{}) ([]domain.JournalEntry, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to query journal entries")
		return nil, domain.NewPersistenceError("query journal entries", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, domain.NewPersistenceError("scan journal entry", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("query journal entries", err)
	}
	rows.Close()

	if err := r.attachLines(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// attachLines loads the lines of all given entries in one query
func (r *journalRepository) attachLines(ctx context.Context, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}

	ids := make([]int64, len(entries))
	index := make(map[int64]int, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
		index[e.ID] = i
	}

	query := `
		SELECT l.id, l.entry_id, l.line_no, l.account_id, a.code, l.side, l.amount,
			   l.currency, l.exchange_rate, l.foreign_amount, l.remark, l.created_at, l.updated_at
		FROM journal_lines l
		JOIN accounts a ON a.id = l.account_id
		WHERE l.entry_id = ANY($1)
		ORDER BY l.entry_id, l.line_no
	`

	rows, err := r.q.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to query journal lines")
		return domain.NewPersistenceError("query journal lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.JournalLine
		var foreign decimal.NullDecimal
		err := rows.Scan(
			&line.ID,
			&line.EntryID,
			&line.LineNo,
			&line.AccountID,
			&line.AccountCode,
			&line.Side,
			&line.Amount,
			&line.Currency,
			&line.ExchangeRate,
			&foreign,
			&line.Remark,
			&line.CreatedAt,
			&line.UpdatedAt,
		)
		if err != nil {
			return domain.NewPersistenceError("scan journal line", err)
		}
		if foreign.Valid {
			amount := foreign.Decimal
			line.ForeignAmount = &amount
		}
		i := index[line.EntryID]
		entries[i].Lines = append(entries[i].Lines, line)
	}

	if err := rows.Err(); err != nil {
		return domain.NewPersistenceError("query journal lines", err)
	}
	return nil
}

// maxSuffixQuery selects the highest numeric suffix of the vouchers matching
// the LIKE pattern placeholder; pos is the 1-based position after the prefix.
func maxSuffixQuery(pos, pattern string) string {
	return `
		SELECT MAX(CAST(SUBSTRING(voucher_number FROM ` + pos + `::int) AS BIGINT))
		FROM journal_entries
		WHERE voucher_number LIKE ` + pattern + ` AND SUBSTRING(voucher_number FROM ` + pos + `::int) ~ '^[0-9]+$'
	`
}

func (r *journalRepository) MaxVoucherSequence(ctx context.Context, prefix string) (int64, error) {
	query := `SELECT COALESCE((` + maxSuffixQuery("$1", "$2") + `), 0)`

	var max int64
	err := r.q.QueryRowContext(ctx, query, len(prefix)+1, prefix+"%").Scan(&max)
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to scan voucher numbers")
		return 0, domain.NewPersistenceError("scan voucher numbers", err)
	}
	return max, nil
}

// NextVoucherSequence never hands out a number at or below an existing
// voucher of the prefix, including ones saved with an explicit number.
func (r *journalRepository) NextVoucherSequence(ctx context.Context, prefix string) (int64, error) {
	query := `
		INSERT INTO voucher_sequences (prefix, last_value)
		VALUES ($1, COALESCE((` + maxSuffixQuery("$2", "$3") + `), 0) + 1)
		ON CONFLICT (prefix) DO UPDATE
		SET last_value = GREATEST(voucher_sequences.last_value + 1, EXCLUDED.last_value)
		RETURNING last_value
	`

	var next int64
	err := r.q.QueryRowContext(ctx, query, prefix, len(prefix)+1, prefix+"%").Scan(&next)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("prefix", prefix).Error("Failed to allocate voucher sequence")
		return 0, domain.NewPersistenceError("allocate voucher sequence", err)
	}
	return next, nil
}

func scanEntry(row rowScanner) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	var businessID sql.NullInt64
	var reviewedBy sql.NullString
	var reviewedAt sql.NullTime

	err := row.Scan(
		&entry.ID,
		&entry.VoucherNumber,
		&entry.EntryDate,
		&entry.Description,
		&entry.TotalAmount,
		&entry.Status,
		&entry.BusinessType,
		&businessID,
		&entry.CreatedBy,
		&reviewedBy,
		&reviewedAt,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if businessID.Valid {
		entry.BusinessID = &businessID.Int64
	}
	if reviewedBy.Valid {
		entry.ReviewedBy = &reviewedBy.String
	}
	if reviewedAt.Valid {
		entry.ReviewedAt = &reviewedAt.Time
	}
	entry.EntryDate = domain.DateOf(entry.EntryDate)
	return &entry, nil
}
