package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransactionType is the direction of money on the bank statement
type BankTransactionType string

const (
	Inflow  BankTransactionType = "INFLOW"
	Outflow BankTransactionType = "OUTFLOW"
)

// ReconciliationStatus is the matching state of a bank transaction
type ReconciliationStatus string

const (
	Unmatched   ReconciliationStatus = "UNMATCHED"
	Matched     ReconciliationStatus = "MATCHED"
	Outstanding ReconciliationStatus = "OUTSTANDING"
)

// BankTransaction represents one line of an external bank statement
type BankTransaction struct {
	ID                 int64                `json:"id" db:"id"`
	BankAccount        string               `json:"bank_account" db:"bank_account"`
	BankName           string               `json:"bank_name" db:"bank_name"`
	TransactionDate    time.Time            `json:"transaction_date" db:"transaction_date"`
	TransactionNo      string               `json:"transaction_no" db:"transaction_no"`
	Type               BankTransactionType  `json:"type" db:"type"`
	Amount             decimal.Decimal      `json:"amount" db:"amount"`
	Balance            decimal.Decimal      `json:"balance" db:"balance"`
	CounterpartName    string               `json:"counterpart_name,omitempty" db:"counterpart_name"`
	CounterpartAccount string               `json:"counterpart_account,omitempty" db:"counterpart_account"`
	Purpose            string               `json:"purpose,omitempty" db:"purpose"`
	Status             ReconciliationStatus `json:"status" db:"status"`
	MatchedEntryID     *int64               `json:"matched_entry_id,omitempty" db:"matched_entry_id"`
	ReconciliationDate *time.Time           `json:"reconciliation_date,omitempty" db:"reconciliation_date"`
	CreatedAt          time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at" db:"updated_at"`
}

// MarkMatched pairs the transaction with a ledger entry.
func (t *BankTransaction) MarkMatched(entryID int64, on time.Time) {
	day := DateOf(on)
	t.Status = Matched
	t.MatchedEntryID = &entryID
	t.ReconciliationDate = &day
}

// ClearMatch returns the transaction to the unmatched pool.
func (t *BankTransaction) ClearMatch() {
	t.Status = Unmatched
	t.MatchedEntryID = nil
	t.ReconciliationDate = nil
}

// BankTransactionFilter narrows bank transaction queries. Zero values are ignored.
type BankTransactionFilter struct {
	BankAccount string
	From        time.Time
	To          time.Time
	Status      ReconciliationStatus
}

// BankStatistics counts an account's transactions per reconciliation status
type BankStatistics struct {
	BankAccount string `json:"bank_account,omitempty"`
	Total       int    `json:"total"`
	Matched     int    `json:"matched"`
	Unmatched   int    `json:"unmatched"`
	Outstanding int    `json:"outstanding"`
}
