// Package balance aggregates journal lines into per-account balances.
package balance

import (
	"strings"

	"github.com/shopspring/decimal"

	"ledger-recon/internal/domain"
	"ledger-recon/pkg/logger"
)

// Balances maps account code to its signed balance on the normal side.
type Balances map[string]decimal.Decimal

// Compute sums every line of entries into its account's balance. A line on
// the account's normal side adds its amount, the opposite side subtracts it.
// Lines whose account is not in chart are skipped.
func Compute(entries []domain.JournalEntry, chart domain.Chart) Balances {
	balances := make(Balances)
	skipped := 0

	for _, entry := range entries {
		for _, line := range entry.Lines {
			acc, ok := chart.Account(line.AccountID)
			if !ok {
				skipped++
				continue
			}

			delta := line.Amount
			if line.Side != acc.NormalSide {
				delta = delta.Neg()
			}
			balances[acc.Code] = balances.Get(acc.Code).Add(delta)
		}
	}

	if skipped > 0 {
		logger.GetLogger().WithField("lines", skipped).Warn("Skipped journal lines with unknown accounts")
	}

	return balances
}

// Get returns the balance of code, or zero.
func (b Balances) Get(code string) decimal.Decimal {
	if v, ok := b[code]; ok {
		return v
	}
	return decimal.Zero
}

// Sum adds the balances of codes.
func (b Balances) Sum(codes ...string) decimal.Decimal {
	total := decimal.Zero
	for _, code := range codes {
		total = total.Add(b.Get(code))
	}
	return total
}

// SumPrefixed adds the balances of every code starting with one of prefixes.
func (b Balances) SumPrefixed(prefixes ...string) decimal.Decimal {
	total := decimal.Zero
	for code, v := range b {
		for _, prefix := range prefixes {
			if strings.HasPrefix(code, prefix) {
				total = total.Add(v)
				break
			}
		}
	}
	return total
}

// Net returns Sum(plus) minus Sum(minus), e.g. fixed assets less depreciation.
func (b Balances) Net(plus, minus []string) decimal.Decimal {
	return b.Sum(plus...).Sub(b.Sum(minus...))
}

// LedgerBalance is the combined balance across entries of all accounts
// whose code starts with one of prefixes.
func LedgerBalance(entries []domain.JournalEntry, chart domain.Chart, prefixes []string) decimal.Decimal {
	return Compute(entries, chart).SumPrefixed(prefixes...)
}
