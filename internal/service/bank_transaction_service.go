package service

import (
	"context"
	"io"
	"strings"

	"ledger-recon/internal/domain"
	"ledger-recon/internal/parser"
	"ledger-recon/internal/repository"
	"ledger-recon/pkg/logger"
)

type BankTransactionService interface {
	Create(ctx context.Context, tx *domain.BankTransaction) error
	BulkCreate(ctx context.Context, transactions []domain.BankTransaction) error
	FindByID(ctx context.Context, id int64) (*domain.BankTransaction, error)
	Find(ctx context.Context, filter domain.BankTransactionFilter) ([]domain.BankTransaction, error)
	FindUnreconciled(ctx context.Context, bankAccount string) ([]domain.BankTransaction, error)
	Delete(ctx context.Context, id int64) error
	Import(ctx context.Context, bankAccount, bankName string, r io.Reader) (*ImportResult, error)
}

// ImportResult summarizes a statement import
type ImportResult struct {
	BankAccount string `json:"bank_account"`
	Imported    int    `json:"imported"`
	Batches     int    `json:"batches"`
}

type bankTransactionService struct {
	store     repository.Store
	batchSize int
}

func NewBankTransactionService(store repository.Store, batchSize int) BankTransactionService {
	return &bankTransactionService{store: store, batchSize: batchSize}
}

func (s *bankTransactionService) Create(ctx context.Context, tx *domain.BankTransaction) error {
	if err := s.validate(tx); err != nil {
		return err
	}
	tx.Status = domain.Unmatched
	return s.store.BankTransactions().Create(ctx, tx)
}

// BulkCreate stores all transactions or none
func (s *bankTransactionService) BulkCreate(ctx context.Context, transactions []domain.BankTransaction) error {
	if len(transactions) == 0 {
		return domain.NewValidationError("no bank transactions supplied")
	}

	for i := range transactions {
		if err := s.validate(&transactions[i]); err != nil {
			logger.GetLogger().WithError(err).WithField("index", i).Warn("Invalid bank transaction")
			return domain.NewLineError(i+1, "%s", err.Error())
		}
		transactions[i].Status = domain.Unmatched
	}

	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		return tx.BankTransactions().BulkCreate(ctx, transactions)
	})
}

func (s *bankTransactionService) FindByID(ctx context.Context, id int64) (*domain.BankTransaction, error) {
	return s.store.BankTransactions().GetByID(ctx, id)
}

func (s *bankTransactionService) Find(ctx context.Context, filter domain.BankTransactionFilter) ([]domain.BankTransaction, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		return nil, domain.NewValidationError("start date cannot be after end date")
	}
	return s.store.BankTransactions().Find(ctx, filter)
}

func (s *bankTransactionService) FindUnreconciled(ctx context.Context, bankAccount string) ([]domain.BankTransaction, error) {
	return s.store.BankTransactions().Find(ctx, domain.BankTransactionFilter{
		BankAccount: bankAccount,
		Status:      domain.Unmatched,
	})
}

// Delete refuses matched transactions; unmatch them first
func (s *bankTransactionService) Delete(ctx context.Context, id int64) error {
	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		existing, err := tx.BankTransactions().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing.Status == domain.Matched {
			return &domain.StateError{Resource: "bank transaction", ID: id, From: string(existing.Status), To: "DELETED"}
		}
		return tx.BankTransactions().Delete(ctx, id)
	})
}

// Import streams a CSV statement into the store. Each batch is written
// atomically; rows the parser rejects are skipped.
func (s *bankTransactionService) Import(ctx context.Context, bankAccount, bankName string, r io.Reader) (*ImportResult, error) {
	bankAccount = strings.TrimSpace(bankAccount)
	if bankAccount == "" {
		return nil, domain.NewValidationError("bank account is required")
	}

	result := &ImportResult{BankAccount: bankAccount}
	p := parser.NewCSVBankStatementParser(bankAccount, bankName)

	err := p.Parse(r, s.batchSize, func(batch []domain.BankTransaction) error {
		valid := make([]domain.BankTransaction, 0, len(batch))
		for i := range batch {
			if err := s.validate(&batch[i]); err != nil {
				logger.GetLogger().WithError(err).WithField("transaction_no", batch[i].TransactionNo).Warn("Skipping invalid statement row")
				continue
			}
			valid = append(valid, batch[i])
		}
		if len(valid) == 0 {
			return nil
		}

		if err := s.store.WithinTx(ctx, func(tx repository.Store) error {
			return tx.BankTransactions().BulkCreate(ctx, valid)
		}); err != nil {
			return err
		}
		result.Imported += len(valid)
		result.Batches++
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"bank_account": bankAccount,
		"imported":     result.Imported,
		"batches":      result.Batches,
	}).Info("Bank statement imported")

	return result, nil
}

func (s *bankTransactionService) validate(tx *domain.BankTransaction) error {
	tx.BankAccount = strings.TrimSpace(tx.BankAccount)
	if tx.BankAccount == "" {
		return domain.NewValidationError("bank account is required")
	}
	if strings.TrimSpace(tx.TransactionNo) == "" {
		return domain.NewValidationError("transaction number is required")
	}
	if tx.TransactionDate.IsZero() {
		return domain.NewValidationError("transaction date is required")
	}
	tx.TransactionDate = domain.DateOf(tx.TransactionDate)
	if tx.Type != domain.Inflow && tx.Type != domain.Outflow {
		return domain.NewValidationError("invalid transaction type: %s", tx.Type)
	}
	if !tx.Amount.IsPositive() {
		return domain.NewValidationError("amount must be greater than zero")
	}
	if !tx.Amount.Equal(tx.Amount.Round(2)) {
		return domain.NewValidationError("amount %s has more than 2 decimal places", tx.Amount.String())
	}
	return nil
}
