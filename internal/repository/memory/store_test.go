package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-recon/internal/domain"
	"ledger-recon/internal/repository"
)

func seedAccounts(t *testing.T, s *Store) (cash, revenue domain.Account) {
	t.Helper()
	ctx := context.Background()
	cash = domain.Account{Code: "1002", Name: "Bank deposits", Type: domain.Asset, NormalSide: domain.Debit, Enabled: true}
	revenue = domain.Account{Code: "6001", Name: "Main business revenue", Type: domain.ProfitLoss, NormalSide: domain.Credit, Enabled: true}
	require.NoError(t, s.Accounts().Create(ctx, &cash))
	require.NoError(t, s.Accounts().Create(ctx, &revenue))
	return cash, revenue
}

func entry(voucher string, day time.Time, cashID, revenueID int64, amount string) *domain.JournalEntry {
	a := decimal.RequireFromString(amount)
	return &domain.JournalEntry{
		VoucherNumber: voucher,
		EntryDate:     day,
		TotalAmount:   a,
		Status:        domain.Draft,
		Lines: []domain.JournalLine{
			{LineNo: 1, AccountID: cashID, Side: domain.Debit, Amount: a},
			{LineNo: 2, AccountID: revenueID, Side: domain.Credit, Amount: a},
		},
	}
}

func TestStore_WithinTxRollsBackOnError(t *testing.T) {
	s := NewStore()
	cash, revenue := seedAccounts(t, s)
	ctx := context.Background()
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(tx repository.Store) error {
		require.NoError(t, tx.Journals().Create(ctx, entry("PZ-20250115-0001", day, cash.ID, revenue.ID, "100.00")))
		_, err := tx.Journals().NextVoucherSequence(ctx, "PZ-20250115-")
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	entries, err := s.Journals().Find(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)

	next, err := s.Journals().NextVoucherSequence(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(1), next, "sequence advance must be rolled back too")
}

func TestStore_WithinTxCommits(t *testing.T) {
	s := NewStore()
	cash, revenue := seedAccounts(t, s)
	ctx := context.Background()
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	e := entry("PZ-20250115-0001", day, cash.ID, revenue.ID, "100.00")
	err := s.WithinTx(ctx, func(tx repository.Store) error {
		return tx.Journals().Create(ctx, e)
	})
	require.NoError(t, err)

	got, err := s.Journals().GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, e.ID, got.Lines[0].EntryID)
	assert.Equal(t, "1002", got.Lines[0].AccountCode)
	assert.Equal(t, "6001", got.Lines[1].AccountCode)
}

func TestJournalRepository_ReturnsCopies(t *testing.T) {
	s := NewStore()
	cash, revenue := seedAccounts(t, s)
	ctx := context.Background()

	e := entry("PZ-20250115-0001", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), cash.ID, revenue.ID, "100.00")
	require.NoError(t, s.Journals().Create(ctx, e))

	got, err := s.Journals().GetByID(ctx, e.ID)
	require.NoError(t, err)
	got.Lines[0].Amount = decimal.NewFromInt(999)

	again, err := s.Journals().GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, again.Lines[0].Amount.Equal(decimal.RequireFromString("100.00")))
}

func TestJournalRepository_FindOrdersByDateThenID(t *testing.T) {
	s := NewStore()
	cash, revenue := seedAccounts(t, s)
	ctx := context.Background()

	late := entry("PZ-20250120-0001", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), cash.ID, revenue.ID, "1")
	early := entry("PZ-20250110-0001", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), cash.ID, revenue.ID, "2")
	outside := entry("PZ-20250205-0001", time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), cash.ID, revenue.ID, "3")
	for _, e := range []*domain.JournalEntry{late, early, outside} {
		require.NoError(t, s.Journals().Create(ctx, e))
	}

	entries, err := s.Journals().Find(ctx, domain.EntryFilter{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, early.ID, entries[0].ID)
	assert.Equal(t, late.ID, entries[1].ID)
}

func TestJournalRepository_NextVoucherSequenceSeedsFromExisting(t *testing.T) {
	s := NewStore()
	cash, revenue := seedAccounts(t, s)
	ctx := context.Background()

	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Journals().Create(ctx, entry("PZ-20250115-0007", day, cash.ID, revenue.ID, "1")))

	highest, err := s.Journals().MaxVoucherSequence(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(7), highest)

	next, err := s.Journals().NextVoucherSequence(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(8), next)

	next, err = s.Journals().NextVoucherSequence(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(9), next)
}

func TestJournalRepository_NextVoucherSequenceSkipsLaterExplicitVoucher(t *testing.T) {
	s := NewStore()
	cash, revenue := seedAccounts(t, s)
	ctx := context.Background()
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	next, err := s.Journals().NextVoucherSequence(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)
	require.NoError(t, s.Journals().Create(ctx, entry("PZ-20250115-0001", day, cash.ID, revenue.ID, "1")))
	require.NoError(t, s.Journals().Create(ctx, entry("PZ-20250115-0002", day, cash.ID, revenue.ID, "1")))

	next, err = s.Journals().NextVoucherSequence(ctx, "PZ-20250115-")
	require.NoError(t, err)
	assert.Equal(t, int64(3), next)
}

func TestJournalRepository_NotFound(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.Journals().GetByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.Journals().Delete(ctx, 42), domain.ErrNotFound)
}

func TestBankTransactionRepository_Statistics(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	txs := []domain.BankTransaction{
		{BankAccount: "6222", TransactionNo: "T1", Type: domain.Inflow, Amount: decimal.NewFromInt(10)},
		{BankAccount: "6222", TransactionNo: "T2", Type: domain.Outflow, Amount: decimal.NewFromInt(5), Status: domain.Outstanding},
		{BankAccount: "9999", TransactionNo: "T3", Type: domain.Inflow, Amount: decimal.NewFromInt(1)},
	}
	require.NoError(t, s.BankTransactions().BulkCreate(ctx, txs))
	assert.Equal(t, domain.Unmatched, txs[0].Status)

	matched := txs[0]
	matched.MarkMatched(77, time.Now())
	require.NoError(t, s.BankTransactions().UpdateMatch(ctx, &matched))

	stats, err := s.BankTransactions().Statistics(ctx, "6222")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Matched)
	assert.Equal(t, 1, stats.Outstanding)
	assert.Equal(t, 0, stats.Unmatched)

	ids, err := s.BankTransactions().MatchedEntryIDs(ctx, "6222")
	require.NoError(t, err)
	assert.True(t, ids[77])
}
