package matcher

import (
	"strings"

	"github.com/shopspring/decimal"

	"ledger-recon/internal/domain"
)

// ReportInput carries the balances and outstanding items of a reconciliation
type ReportInput struct {
	BookBalance       decimal.Decimal
	BankStatedBalance decimal.Decimal
	BookOnly          []domain.JournalEntry
	BankOnly          []domain.BankTransaction
}

// Figures are the computed amounts of a reconciliation report
type Figures struct {
	BookOnlyIncome      decimal.Decimal
	BookOnlyExpense     decimal.Decimal
	BankOnlyIncome      decimal.Decimal
	BankOnlyExpense     decimal.Decimal
	AdjustedBookBalance decimal.Decimal
	AdjustedBankBalance decimal.Decimal
	Status              domain.ReportStatus
}

// ComputeFigures adjusts each side by the items only the other side has seen.
// Book-only entries split on the sign of their total; bank-only transactions
// split on direction.
func ComputeFigures(in ReportInput) Figures {
	f := Figures{
		BookOnlyIncome:  decimal.Zero,
		BookOnlyExpense: decimal.Zero,
		BankOnlyIncome:  decimal.Zero,
		BankOnlyExpense: decimal.Zero,
	}

	for _, entry := range in.BookOnly {
		if entry.TotalAmount.IsPositive() {
			f.BookOnlyIncome = f.BookOnlyIncome.Add(entry.TotalAmount)
		} else {
			f.BookOnlyExpense = f.BookOnlyExpense.Add(entry.TotalAmount.Abs())
		}
	}

	for _, tx := range in.BankOnly {
		if tx.Type == domain.Inflow {
			f.BankOnlyIncome = f.BankOnlyIncome.Add(tx.Amount)
		} else {
			f.BankOnlyExpense = f.BankOnlyExpense.Add(tx.Amount)
		}
	}

	f.AdjustedBookBalance = in.BookBalance.Add(f.BankOnlyIncome).Sub(f.BankOnlyExpense)
	f.AdjustedBankBalance = in.BankStatedBalance.Add(f.BookOnlyIncome).Sub(f.BookOnlyExpense)

	// Compare to the cent
	if f.AdjustedBookBalance.Round(2).Equal(f.AdjustedBankBalance.Round(2)) {
		f.Status = domain.Balanced
	} else {
		f.Status = domain.Unbalanced
	}
	return f
}

// BookOnly returns the entries that mention keyword in their business type
// and that no transaction of the account has been matched to.
func BookOnly(entries []domain.JournalEntry, matched map[int64]bool, keyword string) []domain.JournalEntry {
	keyword = strings.ToLower(keyword)
	result := make([]domain.JournalEntry, 0)
	for _, entry := range entries {
		if !strings.Contains(strings.ToLower(entry.BusinessType), keyword) {
			continue
		}
		if matched[entry.ID] {
			continue
		}
		result = append(result, entry)
	}
	return result
}
