package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEntryStatus_Transitions(t *testing.T) {
	assert.True(t, Draft.CanTransitionTo(Posted))
	assert.True(t, Posted.CanTransitionTo(Reviewed))

	assert.False(t, Posted.CanTransitionTo(Posted), "re-posting must be rejected")
	assert.False(t, Posted.CanTransitionTo(Draft))
	assert.False(t, Reviewed.CanTransitionTo(Draft))
	assert.False(t, Draft.CanTransitionTo(Reviewed))

	assert.True(t, Draft.Deletable())
	assert.False(t, Posted.Deletable())
	assert.False(t, Reviewed.Deletable())
}

func TestJournalEntry_SideTotals(t *testing.T) {
	entry := JournalEntry{Lines: []JournalLine{
		{Side: Debit, Amount: decimal.RequireFromString("600.00")},
		{Side: Debit, Amount: decimal.RequireFromString("400.00")},
		{Side: Credit, Amount: decimal.RequireFromString("1000.00")},
	}}

	debits, credits := entry.SideTotals()
	assert.True(t, debits.Equal(decimal.RequireFromString("1000")))
	assert.True(t, credits.Equal(decimal.RequireFromString("1000")))
}

func TestErrors_MatchSentinels(t *testing.T) {
	err := fmt.Errorf("save entry: %w", NewLineError(2, "amount must be greater than zero"))
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "save entry: line 2: amount must be greater than zero", err.Error())

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, 2, ve.Line)

	assert.True(t, errors.Is(NewNotFoundError("journal entry", 7), ErrNotFound))
	assert.True(t, errors.Is(&StateError{Resource: "journal entry", ID: 1, From: "POSTED", To: "POSTED"}, ErrInvalidTransition))

	cause := errors.New("connection reset")
	pe := NewPersistenceError("insert entry", cause)
	assert.True(t, errors.Is(pe, ErrPersistence))
	assert.True(t, errors.Is(pe, cause))
	assert.Same(t, pe, NewPersistenceError("outer", pe))
	assert.Nil(t, NewPersistenceError("noop", nil))
}

func TestBankTransaction_MatchLifecycle(t *testing.T) {
	tx := BankTransaction{Status: Unmatched}
	on := time.Date(2025, 3, 2, 15, 4, 5, 0, time.UTC)

	tx.MarkMatched(42, on)
	assert.Equal(t, Matched, tx.Status)
	assert.Equal(t, int64(42), *tx.MatchedEntryID)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), *tx.ReconciliationDate)

	tx.ClearMatch()
	assert.Equal(t, Unmatched, tx.Status)
	assert.Nil(t, tx.MatchedEntryID)
	assert.Nil(t, tx.ReconciliationDate)
}

func TestWithinDays(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, WithinDays(time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC), from, to))
	assert.True(t, WithinDays(from, from, to))
	assert.False(t, WithinDays(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), from, to))
	assert.True(t, WithinDays(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{}, to))
}
