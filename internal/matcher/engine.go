package matcher

import (
	"time"

	"ledger-recon/internal/domain"
	"ledger-recon/pkg/logger"
)

// MatchingStrategy decides whether a ledger entry accounts for a bank transaction
type MatchingStrategy interface {
	Match(tx domain.BankTransaction, entry domain.JournalEntry) bool
}

// Keyed strategies can be indexed: Match(tx, entry) holds exactly when
// TransactionKey(tx) == EntryKey(entry).
type Keyed interface {
	TransactionKey(tx domain.BankTransaction) string
	EntryKey(entry domain.JournalEntry) string
}

// DateAmountStrategy matches on the same calendar day and the exact amount.
// There is no tolerance on either.
type DateAmountStrategy struct{}

func (s *DateAmountStrategy) Match(tx domain.BankTransaction, entry domain.JournalEntry) bool {
	return domain.SameDay(tx.TransactionDate, entry.EntryDate) && tx.Amount.Equal(entry.TotalAmount)
}

func (s *DateAmountStrategy) TransactionKey(tx domain.BankTransaction) string {
	return key(tx.TransactionDate, tx.Amount.String())
}

func (s *DateAmountStrategy) EntryKey(entry domain.JournalEntry) string {
	return key(entry.EntryDate, entry.TotalAmount.String())
}

func key(day time.Time, amount string) string {
	return domain.DateOf(day).Format(domain.DateLayout) + "|" + amount
}

// Engine pairs bank transactions with ledger entries
type Engine struct {
	strategy   MatchingStrategy
	allowReuse bool
}

// NewEngine builds an engine. Unless allowReuse is set, an entry pairs with
// at most one transaction per pass.
func NewEngine(strategy MatchingStrategy, allowReuse bool) *Engine {
	if strategy == nil {
		strategy = &DateAmountStrategy{}
	}
	return &Engine{
		strategy:   strategy,
		allowReuse: allowReuse,
	}
}

// Input holds the candidates of one matching pass
type Input struct {
	Transactions []domain.BankTransaction
	Entries      []domain.JournalEntry
	StartDate    time.Time
	EndDate      time.Time
}

// Pair is a transaction together with the entry chosen for it
type Pair struct {
	Transaction domain.BankTransaction
	Entry       domain.JournalEntry
}

type Output struct {
	Matched               []Pair
	UnmatchedTransactions []domain.BankTransaction
}

// Match walks transactions in order and takes the first acceptable entry,
// in entry order, for each.
func (e *Engine) Match(input Input) (*Output, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"transaction_count": len(input.Transactions),
		"entry_count":       len(input.Entries),
		"start_date":        input.StartDate,
		"end_date":          input.EndDate,
	}).Info("Starting auto-match")

	output := &Output{
		Matched:               make([]Pair, 0),
		UnmatchedTransactions: make([]domain.BankTransaction, 0),
	}

	consumed := make(map[int]bool)
	find := e.scan(input.Entries, consumed)
	if keyed, ok := e.strategy.(Keyed); ok {
		find = e.lookup(keyed, input.Entries, consumed)
	}

	for _, tx := range input.Transactions {
		idx := find(tx)
		if idx < 0 {
			output.UnmatchedTransactions = append(output.UnmatchedTransactions, tx)
			continue
		}
		if !e.allowReuse {
			consumed[idx] = true
		}
		output.Matched = append(output.Matched, Pair{Transaction: tx, Entry: input.Entries[idx]})
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"matched":   len(output.Matched),
		"unmatched": len(output.UnmatchedTransactions),
	}).Info("Auto-match completed")

	return output, nil
}

// scan tries every entry against the strategy
func (e *Engine) scan(entries []domain.JournalEntry, consumed map[int]bool) func(domain.BankTransaction) int {
	return func(tx domain.BankTransaction) int {
		for i, entry := range entries {
			if consumed[i] {
				continue
			}
			if e.strategy.Match(tx, entry) {
				return i
			}
		}
		return -1
	}
}

// lookup indexes entries by key; each bucket keeps entry order
func (e *Engine) lookup(keyed Keyed, entries []domain.JournalEntry, consumed map[int]bool) func(domain.BankTransaction) int {
	index := make(map[string][]int, len(entries))
	for i, entry := range entries {
		k := keyed.EntryKey(entry)
		index[k] = append(index[k], i)
	}

	return func(tx domain.BankTransaction) int {
		for _, i := range index[keyed.TransactionKey(tx)] {
			if !consumed[i] {
				return i
			}
		}
		return -1
	}
}

// BuildPairs converts matches into their reported form
func (e *Engine) BuildPairs(output *Output) []domain.MatchedPair {
	pairs := make([]domain.MatchedPair, 0, len(output.Matched))
	for _, m := range output.Matched {
		pairs = append(pairs, domain.MatchedPair{
			TransactionID: m.Transaction.ID,
			TransactionNo: m.Transaction.TransactionNo,
			EntryID:       m.Entry.ID,
			VoucherNumber: m.Entry.VoucherNumber,
			Amount:        m.Transaction.Amount,
			Date:          domain.DateOf(m.Transaction.TransactionDate),
		})
	}
	return pairs
}

// ValidateInput rejects an inverted date window
func ValidateInput(input Input) error {
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() && input.StartDate.After(input.EndDate) {
		return domain.NewValidationError("start date %s must be before or equal to end date %s",
			input.StartDate.Format(domain.DateLayout), input.EndDate.Format(domain.DateLayout))
	}
	return nil
}

