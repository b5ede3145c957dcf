package domain

import "time"

// AccountType classifies an account in the chart of accounts
type AccountType string

const (
	Asset      AccountType = "ASSET"
	Liability  AccountType = "LIABILITY"
	Equity     AccountType = "EQUITY"
	Cost       AccountType = "COST"
	ProfitLoss AccountType = "PROFIT_LOSS"
)

func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Cost, ProfitLoss:
		return true
	}
	return false
}

// Side is the debit or credit side of a journal line or account balance
type Side string

const (
	Debit  Side = "DEBIT"
	Credit Side = "CREDIT"
)

func (s Side) Valid() bool {
	return s == Debit || s == Credit
}

// Account is an entry in the chart of accounts
type Account struct {
	ID         int64       `json:"id" db:"id"`
	Code       string      `json:"code" db:"code"`
	Name       string      `json:"name" db:"name"`
	Type       AccountType `json:"type" db:"type"`
	NormalSide Side        `json:"normal_side" db:"normal_side"`
	ParentID   *int64      `json:"parent_id,omitempty" db:"parent_id"`
	Enabled    bool        `json:"enabled" db:"enabled"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" db:"updated_at"`
}

// Chart indexes accounts by id for balance computation
type Chart map[int64]Account

func NewChart(accounts []Account) Chart {
	chart := make(Chart, len(accounts))
	for _, acc := range accounts {
		chart[acc.ID] = acc
	}
	return chart
}

func (c Chart) Account(id int64) (Account, bool) {
	acc, ok := c[id]
	return acc, ok
}
