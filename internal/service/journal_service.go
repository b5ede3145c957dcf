package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ledger-recon/internal/domain"
	"ledger-recon/internal/repository"
	"ledger-recon/internal/sequence"
	"ledger-recon/pkg/logger"
)

const defaultLatestLimit = 10

type JournalService interface {
	Save(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	Post(ctx context.Context, id int64) (*domain.JournalEntry, error)
	Review(ctx context.Context, id int64, reviewer string) (*domain.JournalEntry, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.JournalEntry, error)
	FindByDateRange(ctx context.Context, startDate, endDate time.Time, status domain.EntryStatus) ([]domain.JournalEntry, error)
	Latest(ctx context.Context, limit int) ([]domain.JournalEntry, error)
}

type journalService struct {
	store     repository.Store
	sequencer sequence.Generator
	clock     Clock
}

// NewJournalService builds the posting engine. A nil sequencer numbers
// vouchers from the store's own counter, inside the saving transaction.
func NewJournalService(store repository.Store, sequencer sequence.Generator, clock Clock) JournalService {
	return &journalService{
		store:     store,
		sequencer: sequencer,
		clock:     clock,
	}
}

// Save works on a copy of entry; the caller's value is only updated once
// the entry is stored.
func (s *journalService) Save(ctx context.Context, in *domain.JournalEntry) (*domain.JournalEntry, error) {
	now := s.clock.today()

	entry := *in
	entry.Lines = append([]domain.JournalLine(nil), in.Lines...)

	if entry.ID != 0 {
		existing, err := s.store.Journals().GetByID(ctx, entry.ID)
		if err != nil {
			return nil, err
		}
		if err := requireDraft(existing); err != nil {
			return nil, err
		}
		if entry.VoucherNumber == "" {
			entry.VoucherNumber = existing.VoucherNumber
		}
	}

	if err := s.prepare(ctx, &entry, now); err != nil {
		return nil, err
	}

	var prefix string
	if entry.VoucherNumber == "" {
		prefix = sequence.VoucherPrefix(now)
		if s.sequencer != nil {
			seq, err := s.sequencer.Next(ctx, prefix)
			if err != nil {
				return nil, err
			}
			entry.VoucherNumber = sequence.VoucherNumber(now, seq)
		}
	}

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		if entry.VoucherNumber == "" {
			seq, err := tx.Journals().NextVoucherSequence(ctx, prefix)
			if err != nil {
				return err
			}
			entry.VoucherNumber = sequence.VoucherNumber(now, seq)
		}

		if entry.ID == 0 {
			entry.Status = domain.Draft
			return tx.Journals().Create(ctx, &entry)
		}

		// Re-check under the transaction; the entry may have been posted meanwhile
		existing, err := tx.Journals().GetByID(ctx, entry.ID)
		if err != nil {
			return err
		}
		if err := requireDraft(existing); err != nil {
			return err
		}
		entry.Status = existing.Status
		entry.CreatedAt = existing.CreatedAt
		return tx.Journals().Update(ctx, &entry)
	})
	if err != nil {
		logger.GetLogger().WithError(err).WithField("voucher_number", entry.VoucherNumber).Error("Failed to save journal entry")
		return nil, err
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"entry_id":       entry.ID,
		"voucher_number": entry.VoucherNumber,
		"total_amount":   entry.TotalAmount.String(),
		"lines":          len(entry.Lines),
	}).Info("Journal entry saved")

	*in = entry
	return in, nil
}

// prepare validates lines in order, applies defaults and recomputes the total
func (s *journalService) prepare(ctx context.Context, entry *domain.JournalEntry, now time.Time) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now
	if entry.EntryDate.IsZero() {
		entry.EntryDate = now
	}
	entry.EntryDate = domain.DateOf(entry.EntryDate)

	for i := range entry.Lines {
		if err := s.prepareLine(ctx, &entry.Lines[i], i+1, now); err != nil {
			return err
		}
	}

	if len(entry.Lines) == 0 {
		return domain.NewValidationError("journal entry needs at least one line")
	}

	debits, credits := entry.SideTotals()
	if debits.IsZero() || credits.IsZero() {
		return domain.NewValidationError("journal entry needs at least one debit and one credit line")
	}
	if !debits.Equal(credits) {
		return domain.NewValidationError("debit total %s does not equal credit total %s", debits.StringFixed(2), credits.StringFixed(2))
	}

	// The total is the debit side
	entry.TotalAmount = debits
	return nil
}

func (s *journalService) prepareLine(ctx context.Context, line *domain.JournalLine, n int, now time.Time) error {
	line.LineNo = n

	if line.Side == "" {
		return domain.NewLineError(n, "side is required")
	}
	line.Side = domain.Side(strings.ToUpper(string(line.Side)))
	if !line.Side.Valid() {
		return domain.NewLineError(n, "invalid side: %s", line.Side)
	}

	if !line.Amount.IsPositive() {
		return domain.NewLineError(n, "amount must be greater than zero")
	}
	if !line.Amount.Equal(line.Amount.Round(2)) {
		return domain.NewLineError(n, "amount %s has more than 2 decimal places", line.Amount.String())
	}

	acc, err := s.store.Accounts().GetByID(ctx, line.AccountID)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			nf.Line = n
		}
		return err
	}
	if !acc.Enabled {
		return domain.NewLineError(n, "account %s is disabled", acc.Code)
	}
	line.AccountCode = acc.Code

	if line.Currency == "" {
		line.Currency = domain.DefaultCurrency
	}
	if line.ExchangeRate.IsZero() {
		line.ExchangeRate = domain.DefaultExchangeRate
	}
	if line.ExchangeRate.IsNegative() {
		return domain.NewLineError(n, "exchange rate must be positive")
	}
	if !line.ExchangeRate.Equal(line.ExchangeRate.Round(4)) {
		return domain.NewLineError(n, "exchange rate %s has more than 4 decimal places", line.ExchangeRate.String())
	}
	if line.ForeignAmount != nil && line.ForeignAmount.IsNegative() {
		return domain.NewLineError(n, "foreign amount cannot be negative")
	}

	if line.CreatedAt.IsZero() {
		line.CreatedAt = now
	}
	line.UpdatedAt = now
	return nil
}

func requireDraft(entry *domain.JournalEntry) error {
	if entry.Status != domain.Draft {
		return &domain.StateError{Resource: "journal entry", ID: entry.ID, From: string(entry.Status), To: "EDITED"}
	}
	return nil
}

func (s *journalService) Post(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	return s.transition(ctx, id, domain.Posted, func(entry *domain.JournalEntry) {})
}

func (s *journalService) Review(ctx context.Context, id int64, reviewer string) (*domain.JournalEntry, error) {
	reviewer = strings.TrimSpace(reviewer)
	if reviewer == "" {
		return nil, domain.NewValidationError("reviewer is required")
	}

	return s.transition(ctx, id, domain.Reviewed, func(entry *domain.JournalEntry) {
		reviewedAt := s.clock.today()
		entry.ReviewedBy = &reviewer
		entry.ReviewedAt = &reviewedAt
	})
}

func (s *journalService) transition(ctx context.Context, id int64, next domain.EntryStatus, apply func(*domain.JournalEntry)) (*domain.JournalEntry, error) {
	var entry *domain.JournalEntry

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		var err error
		entry, err = tx.Journals().GetByID(ctx, id)
		if err != nil {
			return err
		}

		if !entry.Status.CanTransitionTo(next) {
			return &domain.StateError{Resource: "journal entry", ID: id, From: string(entry.Status), To: string(next)}
		}

		entry.Status = next
		entry.UpdatedAt = s.clock.today()
		apply(entry)
		return tx.Journals().UpdateStatus(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"entry_id": id,
		"status":   next,
	}).Info("Journal entry status changed")

	return entry, nil
}

// Delete removes a draft entry together with its lines
func (s *journalService) Delete(ctx context.Context, id int64) error {
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		entry, err := tx.Journals().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !entry.Status.Deletable() {
			return &domain.StateError{Resource: "journal entry", ID: id, From: string(entry.Status), To: "DELETED"}
		}
		return tx.Journals().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	logger.GetLogger().WithField("entry_id", id).Info("Journal entry deleted")
	return nil
}

func (s *journalService) FindByID(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	return s.store.Journals().GetByID(ctx, id)
}

func (s *journalService) FindByDateRange(ctx context.Context, startDate, endDate time.Time, status domain.EntryStatus) ([]domain.JournalEntry, error) {
	if !startDate.IsZero() && !endDate.IsZero() && startDate.After(endDate) {
		return nil, domain.NewValidationError("start date cannot be after end date")
	}
	return s.store.Journals().Find(ctx, domain.EntryFilter{From: startDate, To: endDate, Status: status})
}

func (s *journalService) Latest(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = defaultLatestLimit
	}
	return s.store.Journals().Latest(ctx, limit)
}

// effective keeps the entries that count toward balances
func effective(entries []domain.JournalEntry) []domain.JournalEntry {
	result := make([]domain.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Status.Effective() {
			result = append(result, entry)
		}
	}
	return result
}
