package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ledger-recon/internal/domain"
	"ledger-recon/internal/repository/memory"
)

type fixture struct {
	store    *memory.Store
	accounts map[string]domain.Account
	today    time.Time
}

func (f *fixture) clock() Clock {
	return func() time.Time { return f.today }
}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var testChart = []domain.Account{
	{Code: "1001", Name: "Cash on hand", Type: domain.Asset, NormalSide: domain.Debit, Enabled: true},
	{Code: "1002", Name: "Bank deposits", Type: domain.Asset, NormalSide: domain.Debit, Enabled: true},
	{Code: "1122", Name: "Accounts receivable", Type: domain.Asset, NormalSide: domain.Debit, Enabled: true},
	{Code: "1601", Name: "Fixed assets", Type: domain.Asset, NormalSide: domain.Debit, Enabled: true},
	{Code: "2001", Name: "Short-term loans", Type: domain.Liability, NormalSide: domain.Credit, Enabled: true},
	{Code: "4001", Name: "Paid-in capital", Type: domain.Equity, NormalSide: domain.Credit, Enabled: true},
	{Code: "6001", Name: "Main business revenue", Type: domain.ProfitLoss, NormalSide: domain.Credit, Enabled: true},
	{Code: "6602", Name: "Administrative expense", Type: domain.ProfitLoss, NormalSide: domain.Debit, Enabled: true},
	{Code: "9999", Name: "Retired", Type: domain.Asset, NormalSide: domain.Debit, Enabled: false},
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    memory.NewStore(),
		accounts: make(map[string]domain.Account),
		today:    date("2025-01-01"),
	}
	for _, acc := range testChart {
		acc := acc
		require.NoError(t, f.store.Accounts().Create(context.Background(), &acc))
		f.accounts[acc.Code] = acc
	}
	return f
}

func (f *fixture) line(code string, side domain.Side, amount string) domain.JournalLine {
	return domain.JournalLine{AccountID: f.accounts[code].ID, Side: side, Amount: dec(amount)}
}

// entry builds a two-line voucher moving amount from credit to debit
func (f *fixture) entry(day, debit, credit, amount, businessType string) *domain.JournalEntry {
	return &domain.JournalEntry{
		EntryDate:    date(day),
		Description:  businessType,
		BusinessType: businessType,
		Lines: []domain.JournalLine{
			f.line(debit, domain.Debit, amount),
			f.line(credit, domain.Credit, amount),
		},
	}
}

// posted saves and posts an entry
func (f *fixture) posted(t *testing.T, svc JournalService, e *domain.JournalEntry) *domain.JournalEntry {
	t.Helper()
	ctx := context.Background()
	saved, err := svc.Save(ctx, e)
	require.NoError(t, err)
	posted, err := svc.Post(ctx, saved.ID)
	require.NoError(t, err)
	return posted
}

func (f *fixture) bankTx(t *testing.T, account, day, no string, typ domain.BankTransactionType, amount string) *domain.BankTransaction {
	t.Helper()
	tx := &domain.BankTransaction{
		BankAccount:     account,
		BankName:        "Test Bank",
		TransactionDate: date(day),
		TransactionNo:   no,
		Type:            typ,
		Amount:          dec(amount),
	}
	require.NoError(t, NewBankTransactionService(f.store, 100).Create(context.Background(), tx))
	return tx
}
