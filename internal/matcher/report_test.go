package matcher

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ledger-recon/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeFigures_NoOutstandingItems(t *testing.T) {
	f := ComputeFigures(ReportInput{BookBalance: decimal.Zero, BankStatedBalance: d("1000.00")})

	assert.True(t, f.AdjustedBookBalance.IsZero())
	assert.True(t, f.AdjustedBankBalance.Equal(d("1000.00")))
	assert.Equal(t, domain.Unbalanced, f.Status)
}

func TestComputeFigures_Adjustments(t *testing.T) {
	in := ReportInput{
		BookBalance:       d("1000"),
		BankStatedBalance: d("1150"),
		BookOnly: []domain.JournalEntry{
			{TotalAmount: d("200")},
			{TotalAmount: d("-50")},
		},
		BankOnly: []domain.BankTransaction{
			{Type: domain.Inflow, Amount: d("400")},
			{Type: domain.Outflow, Amount: d("100")},
		},
	}

	f := ComputeFigures(in)
	assert.True(t, f.BookOnlyIncome.Equal(d("200")))
	assert.True(t, f.BookOnlyExpense.Equal(d("50")))
	assert.True(t, f.BankOnlyIncome.Equal(d("400")))
	assert.True(t, f.BankOnlyExpense.Equal(d("100")))
	assert.True(t, f.AdjustedBookBalance.Equal(d("1300")))
	assert.True(t, f.AdjustedBankBalance.Equal(d("1300")))
	assert.Equal(t, domain.Balanced, f.Status)
}

func TestComputeFigures_CentDifferenceIsUnbalanced(t *testing.T) {
	f := ComputeFigures(ReportInput{BookBalance: d("10.00"), BankStatedBalance: d("10.01")})
	assert.Equal(t, domain.Unbalanced, f.Status)
}

func TestBookOnly(t *testing.T) {
	entries := []domain.JournalEntry{
		{ID: 1, BusinessType: "bank_fee"},
		{ID: 2, BusinessType: "Bank transfer"},
		{ID: 3, BusinessType: "sales"},
		{ID: 4, BusinessType: "bank_interest"},
	}

	got := BookOnly(entries, map[int64]bool{4: true}, "bank")
	if assert.Len(t, got, 2) {
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
	}
}
