package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledger-recon/internal/balance"
	"ledger-recon/internal/domain"
	"ledger-recon/internal/matcher"
	"ledger-recon/internal/repository"
	"ledger-recon/pkg/logger"
)

// Book balance modes
const (
	BookBalancePlaceholder = "placeholder"
	BookBalanceLedger      = "ledger"
)

type ReconciliationService interface {
	AutoMatch(ctx context.Context, bankAccount string, startDate, endDate time.Time) (*domain.MatchSummary, error)
	ManualMatch(ctx context.Context, transactionID, entryID int64) (*domain.BankTransaction, error)
	Unmatch(ctx context.Context, transactionID int64) (*domain.BankTransaction, error)
	MarkOutstanding(ctx context.Context, transactionID int64) (*domain.BankTransaction, error)
	GenerateReconciliationReport(ctx context.Context, bankAccount string, asOf time.Time, bankStatedBalance decimal.Decimal, preparer string) (*domain.ReportBundle, error)
	GetReport(ctx context.Context, id int64) (*domain.ReportBundle, error)
	ListReports(ctx context.Context, bankAccount string) ([]domain.ReconciliationReport, error)
	Statistics(ctx context.Context, bankAccount string) (*domain.BankStatistics, error)
}

// ReconciliationOptions tune matching and reporting
type ReconciliationOptions struct {
	// BookBalanceMode is BookBalancePlaceholder (always zero) or
	// BookBalanceLedger (GL balance of MonetaryCodes as of the report date).
	BookBalanceMode string
	// BankBusinessKeyword marks entries that should appear on the bank statement
	BankBusinessKeyword string
	AllowEntryReuse     bool
	MonetaryCodes       []string
}

type reconciliationService struct {
	store  repository.Store
	engine *matcher.Engine
	opts   ReconciliationOptions
	clock  Clock
}

func NewReconciliationService(store repository.Store, opts ReconciliationOptions, clock Clock) ReconciliationService {
	if opts.BookBalanceMode == "" {
		opts.BookBalanceMode = BookBalancePlaceholder
	}
	if opts.BankBusinessKeyword == "" {
		opts.BankBusinessKeyword = "bank"
	}
	return &reconciliationService{
		store:  store,
		engine: matcher.NewEngine(&matcher.DateAmountStrategy{}, opts.AllowEntryReuse),
		opts:   opts,
		clock:  clock,
	}
}

func (s *reconciliationService) AutoMatch(ctx context.Context, bankAccount string, startDate, endDate time.Time) (*domain.MatchSummary, error) {
	bankAccount = strings.TrimSpace(bankAccount)
	if bankAccount == "" {
		return nil, domain.NewValidationError("bank account is required")
	}
	input := matcher.Input{StartDate: startDate, EndDate: endDate}
	if err := matcher.ValidateInput(input); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	log := logger.GetLogger().WithFields(map[string]interface{}{
		"run_id":       runID,
		"bank_account": bankAccount,
	})
	log.Info("Starting auto-match run")

	summary := &domain.MatchSummary{RunID: runID, BankAccount: bankAccount}
	today := s.clock.today()

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		transactions, err := tx.BankTransactions().Find(ctx, domain.BankTransactionFilter{
			BankAccount: bankAccount,
			From:        startDate,
			To:          endDate,
			Status:      domain.Unmatched,
		})
		if err != nil {
			return err
		}

		entries, err := tx.Journals().Find(ctx, domain.EntryFilter{From: startDate, To: endDate})
		if err != nil {
			return err
		}
		entries = effective(entries)

		// Entries already paired in an earlier run stay taken
		if !s.opts.AllowEntryReuse {
			matched, err := tx.BankTransactions().MatchedEntryIDs(ctx, bankAccount)
			if err != nil {
				return err
			}
			entries = withoutIDs(entries, matched)
		}

		input.Transactions = transactions
		input.Entries = entries
		output, err := s.engine.Match(input)
		if err != nil {
			return err
		}

		for _, pair := range output.Matched {
			t := pair.Transaction
			t.MarkMatched(pair.Entry.ID, today)
			if err := tx.BankTransactions().UpdateMatch(ctx, &t); err != nil {
				return err
			}
		}

		summary.TotalCandidates = len(transactions)
		summary.MatchedCount = len(output.Matched)
		summary.MatchedPairs = s.engine.BuildPairs(output)
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Auto-match run failed")
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"matched":    summary.MatchedCount,
		"candidates": summary.TotalCandidates,
	}).Info("Auto-match run completed")

	return summary, nil
}

// ManualMatch pairs a transaction with an entry as instructed; the entry
// is not checked.
func (s *reconciliationService) ManualMatch(ctx context.Context, transactionID, entryID int64) (*domain.BankTransaction, error) {
	return s.updateMatch(ctx, transactionID, func(t *domain.BankTransaction) error {
		t.MarkMatched(entryID, s.clock.today())
		return nil
	})
}

func (s *reconciliationService) Unmatch(ctx context.Context, transactionID int64) (*domain.BankTransaction, error) {
	return s.updateMatch(ctx, transactionID, func(t *domain.BankTransaction) error {
		t.ClearMatch()
		return nil
	})
}

// MarkOutstanding flags an unmatched transaction as a known timing difference
func (s *reconciliationService) MarkOutstanding(ctx context.Context, transactionID int64) (*domain.BankTransaction, error) {
	return s.updateMatch(ctx, transactionID, func(t *domain.BankTransaction) error {
		if t.Status != domain.Unmatched {
			return &domain.StateError{Resource: "bank transaction", ID: t.ID, From: string(t.Status), To: string(domain.Outstanding)}
		}
		t.Status = domain.Outstanding
		return nil
	})
}

func (s *reconciliationService) updateMatch(ctx context.Context, transactionID int64, apply func(*domain.BankTransaction) error) (*domain.BankTransaction, error) {
	var t *domain.BankTransaction

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		var err error
		t, err = tx.BankTransactions().GetByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if err := apply(t); err != nil {
			return err
		}
		return tx.BankTransactions().UpdateMatch(ctx, t)
	})
	if err != nil {
		return nil, err
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"transaction_id": transactionID,
		"status":         t.Status,
	}).Info("Bank transaction reconciliation status changed")

	return t, nil
}

func (s *reconciliationService) GenerateReconciliationReport(
	ctx context.Context,
	bankAccount string,
	asOf time.Time,
	bankStatedBalance decimal.Decimal,
	preparer string,
) (*domain.ReportBundle, error) {
	bankAccount = strings.TrimSpace(bankAccount)
	if bankAccount == "" {
		return nil, domain.NewValidationError("bank account is required")
	}
	if asOf.IsZero() {
		return nil, domain.NewValidationError("reconciliation date is required")
	}

	var bundle *domain.ReportBundle
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		var err error
		bundle, err = s.outstanding(ctx, tx, bankAccount, asOf, bankStatedBalance)
		if err != nil {
			return err
		}

		matched, err := tx.BankTransactions().Find(ctx, domain.BankTransactionFilter{
			BankAccount: bankAccount,
			To:          asOf,
			Status:      domain.Matched,
		})
		if err != nil {
			return err
		}

		report := &bundle.Report
		report.RunID = uuid.New().String()
		report.MatchedCount = len(matched)
		report.Preparer = preparer
		return tx.Reconciliations().Create(ctx, report)
	})
	if err != nil {
		logger.GetLogger().WithError(err).WithField("bank_account", bankAccount).Error("Failed to generate reconciliation report")
		return nil, err
	}

	r := bundle.Report
	logger.GetLogger().WithFields(map[string]interface{}{
		"report_id":             r.ID,
		"bank_account":          bankAccount,
		"adjusted_book_balance": r.AdjustedBookBalance.String(),
		"adjusted_bank_balance": r.AdjustedBankBalance.String(),
		"status":                r.Status,
	}).Info("Reconciliation report generated")

	return bundle, nil
}

// outstanding collects both sides' unmatched items as of asOf and computes
// the adjusted balances
func (s *reconciliationService) outstanding(
	ctx context.Context,
	tx repository.Store,
	bankAccount string,
	asOf time.Time,
	bankStatedBalance decimal.Decimal,
) (*domain.ReportBundle, error) {
	entries, err := tx.Journals().Find(ctx, domain.EntryFilter{To: asOf})
	if err != nil {
		return nil, err
	}
	entries = effective(entries)

	bookBalance, computed, err := s.bookBalance(ctx, tx, entries)
	if err != nil {
		return nil, err
	}

	matchedIDs, err := tx.BankTransactions().MatchedEntryIDs(ctx, bankAccount)
	if err != nil {
		return nil, err
	}
	bookOnly := matcher.BookOnly(entries, matchedIDs, s.opts.BankBusinessKeyword)

	// Outstanding transactions are acknowledged and no longer adjust the book side
	bankOnly, err := tx.BankTransactions().Find(ctx, domain.BankTransactionFilter{
		BankAccount: bankAccount,
		To:          asOf,
		Status:      domain.Unmatched,
	})
	if err != nil {
		return nil, err
	}

	f := matcher.ComputeFigures(matcher.ReportInput{
		BookBalance:       bookBalance,
		BankStatedBalance: bankStatedBalance,
		BookOnly:          bookOnly,
		BankOnly:          bankOnly,
	})

	return &domain.ReportBundle{
		Report: domain.ReconciliationReport{
			BankAccount:         bankAccount,
			ReconciliationDate:  domain.DateOf(asOf),
			BookBalance:         bookBalance,
			BookBalanceComputed: computed,
			BankBalance:         bankStatedBalance,
			AdjustedBookBalance: f.AdjustedBookBalance,
			AdjustedBankBalance: f.AdjustedBankBalance,
			UnmatchedBookCount:  len(bookOnly),
			UnmatchedBankCount:  len(bankOnly),
			Status:              f.Status,
		},
		BookOnlyEntries: bookOnly,
		BankOnly:        bankOnly,
		BookOnlyIncome:  f.BookOnlyIncome,
		BookOnlyExpense: f.BookOnlyExpense,
		BankOnlyIncome:  f.BankOnlyIncome,
		BankOnlyExpense: f.BankOnlyExpense,
	}, nil
}

// bookBalance is zero and flagged as not computed in placeholder mode
func (s *reconciliationService) bookBalance(ctx context.Context, tx repository.Store, entries []domain.JournalEntry) (decimal.Decimal, bool, error) {
	if s.opts.BookBalanceMode != BookBalanceLedger {
		return decimal.Zero, false, nil
	}

	accounts, err := tx.Accounts().List(ctx)
	if err != nil {
		return decimal.Zero, false, err
	}
	return balance.LedgerBalance(entries, domain.NewChart(accounts), s.opts.MonetaryCodes), true, nil
}

// GetReport returns the stored snapshot with the outstanding items as they
// stand now, for the snapshot's date
func (s *reconciliationService) GetReport(ctx context.Context, id int64) (*domain.ReportBundle, error) {
	report, err := s.store.Reconciliations().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bundle, err := s.outstanding(ctx, s.store, report.BankAccount, report.ReconciliationDate, report.BankBalance)
	if err != nil {
		return nil, err
	}
	bundle.Report = *report
	return bundle, nil
}

func (s *reconciliationService) ListReports(ctx context.Context, bankAccount string) ([]domain.ReconciliationReport, error) {
	if strings.TrimSpace(bankAccount) == "" {
		return nil, domain.NewValidationError("bank account is required")
	}
	return s.store.Reconciliations().ListByBankAccount(ctx, bankAccount)
}

func (s *reconciliationService) Statistics(ctx context.Context, bankAccount string) (*domain.BankStatistics, error) {
	return s.store.BankTransactions().Statistics(ctx, bankAccount)
}

func withoutIDs(entries []domain.JournalEntry, ids map[int64]bool) []domain.JournalEntry {
	if len(ids) == 0 {
		return entries
	}
	result := make([]domain.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if !ids[entry.ID] {
			result = append(result, entry)
		}
	}
	return result
}
