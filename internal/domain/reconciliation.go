package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportStatus represents the outcome of a bank reconciliation
type ReportStatus string

const (
	Balanced   ReportStatus = "BALANCED"
	Unbalanced ReportStatus = "UNBALANCED"
)

// ReconciliationReport is an append-only snapshot of one reconciliation run
type ReconciliationReport struct {
	ID                  int64           `json:"id" db:"id"`
	RunID               string          `json:"run_id" db:"run_id"`
	BankAccount         string          `json:"bank_account" db:"bank_account"`
	ReconciliationDate  time.Time       `json:"reconciliation_date" db:"reconciliation_date"`
	BookBalance         decimal.Decimal `json:"book_balance" db:"book_balance"`
	BookBalanceComputed bool            `json:"book_balance_computed" db:"book_balance_computed"`
	BankBalance         decimal.Decimal `json:"bank_balance" db:"bank_balance"`
	AdjustedBookBalance decimal.Decimal `json:"adjusted_book_balance" db:"adjusted_book_balance"`
	AdjustedBankBalance decimal.Decimal `json:"adjusted_bank_balance" db:"adjusted_bank_balance"`
	MatchedCount        int             `json:"matched_count" db:"matched_count"`
	UnmatchedBookCount  int             `json:"unmatched_book_count" db:"unmatched_book_count"`
	UnmatchedBankCount  int             `json:"unmatched_bank_count" db:"unmatched_bank_count"`
	Status              ReportStatus    `json:"status" db:"status"`
	Preparer            string          `json:"preparer" db:"preparer"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
}

// ReportBundle is a reconciliation report together with its outstanding items
type ReportBundle struct {
	Report          ReconciliationReport `json:"report"`
	BookOnlyEntries []JournalEntry       `json:"book_only_entries"`
	BankOnly        []BankTransaction    `json:"bank_only_transactions"`
	BookOnlyIncome  decimal.Decimal      `json:"book_only_income"`
	BookOnlyExpense decimal.Decimal      `json:"book_only_expense"`
	BankOnlyIncome  decimal.Decimal      `json:"bank_only_income"`
	BankOnlyExpense decimal.Decimal      `json:"bank_only_expense"`
}

// MatchedPair records a bank transaction paired with a ledger entry
type MatchedPair struct {
	TransactionID int64           `json:"transaction_id"`
	TransactionNo string          `json:"transaction_no"`
	EntryID       int64           `json:"entry_id"`
	VoucherNumber string          `json:"voucher_number"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
}

// MatchSummary is the result of an auto-match pass
type MatchSummary struct {
	RunID           string        `json:"run_id"`
	BankAccount     string        `json:"bank_account"`
	MatchedCount    int           `json:"matched_count"`
	TotalCandidates int           `json:"total_candidates"`
	MatchedPairs    []MatchedPair `json:"matched_pairs"`
}
