package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus represents the lifecycle state of a journal entry
type EntryStatus string

const (
	Draft    EntryStatus = "DRAFT"
	Posted   EntryStatus = "POSTED"
	Reviewed EntryStatus = "REVIEWED"
)

// entryTransitions lists the allowed forward moves of an entry
var entryTransitions = map[EntryStatus][]EntryStatus{
	Draft:  {Posted},
	Posted: {Reviewed},
}

// CanTransitionTo reports whether an entry in status s may move to next.
func (s EntryStatus) CanTransitionTo(next EntryStatus) bool {
	for _, allowed := range entryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Effective reports whether entries in status s count toward balances,
// statements and reconciliation.
func (s EntryStatus) Effective() bool {
	return s == Posted || s == Reviewed
}

// Deletable reports whether an entry in status s may be deleted.
func (s EntryStatus) Deletable() bool {
	return s == Draft
}

const (
	DefaultCurrency = "CNY"
	VoucherPrefix   = "PZ"
)

var DefaultExchangeRate = decimal.NewFromInt(1)

// JournalEntry is a voucher holding balanced debit and credit lines
type JournalEntry struct {
	ID            int64           `json:"id" db:"id"`
	VoucherNumber string          `json:"voucher_number" db:"voucher_number"`
	EntryDate     time.Time       `json:"entry_date" db:"entry_date"`
	Description   string          `json:"description" db:"description"`
	TotalAmount   decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status        EntryStatus     `json:"status" db:"status"`
	BusinessType  string          `json:"business_type" db:"business_type"`
	BusinessID    *int64          `json:"business_id,omitempty" db:"business_id"`
	CreatedBy     string          `json:"created_by,omitempty" db:"created_by"`
	ReviewedBy    *string         `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt    *time.Time      `json:"reviewed_at,omitempty" db:"reviewed_at"`
	Lines         []JournalLine   `json:"lines"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// JournalLine is one debit or credit posting of an entry.
// It references its entry by id only.
type JournalLine struct {
	ID            int64            `json:"id" db:"id"`
	EntryID       int64            `json:"entry_id" db:"entry_id"`
	LineNo        int              `json:"line_no" db:"line_no"`
	AccountID     int64            `json:"account_id" db:"account_id"`
	AccountCode   string           `json:"account_code,omitempty" db:"account_code"`
	Side          Side             `json:"side" db:"side"`
	Amount        decimal.Decimal  `json:"amount" db:"amount"`
	Currency      string           `json:"currency" db:"currency"`
	ExchangeRate  decimal.Decimal  `json:"exchange_rate" db:"exchange_rate"`
	ForeignAmount *decimal.Decimal `json:"foreign_amount,omitempty" db:"foreign_amount"`
	Remark        string           `json:"remark,omitempty" db:"remark"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" db:"updated_at"`
}

// SideTotals returns the debit and credit sums of the entry lines
func (e *JournalEntry) SideTotals() (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, line := range e.Lines {
		switch line.Side {
		case Debit:
			debits = debits.Add(line.Amount)
		case Credit:
			credits = credits.Add(line.Amount)
		}
	}
	return debits, credits
}

// EntryFilter narrows journal entry queries. Zero values are ignored.
type EntryFilter struct {
	From   time.Time
	To     time.Time
	Status EntryStatus
}
