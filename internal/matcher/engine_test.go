package matcher

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-recon/internal/domain"
)

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

func bankTx(id int64, date, amount string) domain.BankTransaction {
	return domain.BankTransaction{ID: id, TransactionNo: "T", TransactionDate: day(date), Amount: decimal.RequireFromString(amount), Type: domain.Inflow}
}

func ledgerEntry(id int64, date, amount string) domain.JournalEntry {
	return domain.JournalEntry{ID: id, EntryDate: day(date), TotalAmount: decimal.RequireFromString(amount), Status: domain.Posted}
}

// amountOnly is an unkeyed strategy, exercising the linear scan
type amountOnly struct{}

func (amountOnly) Match(tx domain.BankTransaction, entry domain.JournalEntry) bool {
	return tx.Amount.Equal(entry.TotalAmount)
}

func TestEngine_MatchesSameDayAndAmount(t *testing.T) {
	engine := NewEngine(&DateAmountStrategy{}, false)

	output, err := engine.Match(Input{
		Transactions: []domain.BankTransaction{bankTx(1, "2025-03-01", "500.00")},
		Entries: []domain.JournalEntry{
			ledgerEntry(10, "2025-03-02", "500.00"),
			ledgerEntry(11, "2025-03-01", "500"),
		},
	})

	require.NoError(t, err)
	require.Len(t, output.Matched, 1)
	assert.Equal(t, int64(11), output.Matched[0].Entry.ID)
	assert.Empty(t, output.UnmatchedTransactions)
}

func TestEngine_NoTolerance(t *testing.T) {
	engine := NewEngine(nil, false)

	output, err := engine.Match(Input{
		Transactions: []domain.BankTransaction{bankTx(1, "2025-03-01", "500.01")},
		Entries:      []domain.JournalEntry{ledgerEntry(10, "2025-03-01", "500.00")},
	})

	require.NoError(t, err)
	assert.Empty(t, output.Matched)
	assert.Len(t, output.UnmatchedTransactions, 1)
}

func TestEngine_FirstEntryWins(t *testing.T) {
	engine := NewEngine(&DateAmountStrategy{}, false)

	output, err := engine.Match(Input{
		Transactions: []domain.BankTransaction{bankTx(1, "2025-03-01", "100")},
		Entries: []domain.JournalEntry{
			ledgerEntry(20, "2025-03-01", "100"),
			ledgerEntry(21, "2025-03-01", "100"),
		},
	})

	require.NoError(t, err)
	require.Len(t, output.Matched, 1)
	assert.Equal(t, int64(20), output.Matched[0].Entry.ID)
}

func TestEngine_EntryConsumedOncePerPass(t *testing.T) {
	for name, strategy := range map[string]MatchingStrategy{"keyed": &DateAmountStrategy{}, "scan": amountOnly{}} {
		t.Run(name, func(t *testing.T) {
			engine := NewEngine(strategy, false)

			output, err := engine.Match(Input{
				Transactions: []domain.BankTransaction{
					bankTx(1, "2025-03-01", "100"),
					bankTx(2, "2025-03-01", "100"),
					bankTx(3, "2025-03-01", "100"),
				},
				Entries: []domain.JournalEntry{
					ledgerEntry(20, "2025-03-01", "100"),
					ledgerEntry(21, "2025-03-01", "100"),
				},
			})

			require.NoError(t, err)
			require.Len(t, output.Matched, 2)
			assert.Equal(t, int64(20), output.Matched[0].Entry.ID)
			assert.Equal(t, int64(21), output.Matched[1].Entry.ID)
			require.Len(t, output.UnmatchedTransactions, 1)
			assert.Equal(t, int64(3), output.UnmatchedTransactions[0].ID)
		})
	}
}

func TestEngine_AllowReuse(t *testing.T) {
	engine := NewEngine(&DateAmountStrategy{}, true)

	output, err := engine.Match(Input{
		Transactions: []domain.BankTransaction{
			bankTx(1, "2025-03-01", "100"),
			bankTx(2, "2025-03-01", "100"),
		},
		Entries: []domain.JournalEntry{ledgerEntry(20, "2025-03-01", "100")},
	})

	require.NoError(t, err)
	require.Len(t, output.Matched, 2)
	assert.Equal(t, int64(20), output.Matched[1].Entry.ID)
}

func TestEngine_BuildPairs(t *testing.T) {
	engine := NewEngine(nil, false)
	tx := bankTx(1, "2025-03-01", "500.00")
	tx.TransactionNo = "BK-001"
	entry := ledgerEntry(10, "2025-03-01", "500.00")
	entry.VoucherNumber = "PZ-20250301-0001"

	pairs := engine.BuildPairs(&Output{Matched: []Pair{{Transaction: tx, Entry: entry}}})

	require.Len(t, pairs, 1)
	assert.Equal(t, int64(1), pairs[0].TransactionID)
	assert.Equal(t, "BK-001", pairs[0].TransactionNo)
	assert.Equal(t, int64(10), pairs[0].EntryID)
	assert.Equal(t, "PZ-20250301-0001", pairs[0].VoucherNumber)
}

func TestValidateInput(t *testing.T) {
	err := ValidateInput(Input{StartDate: day("2025-03-02"), EndDate: day("2025-03-01")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.NoError(t, ValidateInput(Input{StartDate: day("2025-03-01"), EndDate: day("2025-03-01")}))
	assert.NoError(t, ValidateInput(Input{}))
}
