package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-recon/internal/domain"
	"ledger-recon/internal/statement"
)

func newReports(t *testing.T, f *fixture) ReportService {
	t.Helper()
	mapping, err := statement.DefaultMapping()
	require.NoError(t, err)
	return NewReportService(f.store, mapping, "Acme Trading Co.")
}

func seedLedger(t *testing.T, f *fixture) {
	t.Helper()
	journals := NewJournalService(f.store, nil, f.clock())
	ctx := context.Background()

	f.posted(t, journals, f.entry("2025-01-02", "1002", "4001", "10000.00", "financing"))
	f.posted(t, journals, f.entry("2025-01-10", "1002", "6001", "3000.00", "sales"))
	f.posted(t, journals, f.entry("2025-01-15", "6602", "1001", "400.00", "employee_expense"))
	f.posted(t, journals, f.entry("2025-01-20", "1601", "1002", "2500.00", "investment"))
	f.posted(t, journals, f.entry("2025-02-03", "1122", "6001", "800.00", "sales"))

	// drafts never reach statements
	_, err := journals.Save(ctx, f.entry("2025-01-25", "1002", "6001", "9999.00", "sales"))
	require.NoError(t, err)
}

func TestReportService_BalanceSheet(t *testing.T) {
	f := newFixture(t)
	seedLedger(t, f)

	sheet, err := newReports(t, f).GenerateBalanceSheet(context.Background(), date("2025-01-31"))
	require.NoError(t, err)

	assert.Equal(t, "Acme Trading Co.", sheet.CompanyName)
	assert.Equal(t, date("2025-01-31"), sheet.AsOf)

	// 1001: -400, 1002: 10000 + 3000 - 2500
	assert.Equal(t, "monetary_funds", sheet.CurrentAssets.Items[0].Key)
	assert.True(t, sheet.CurrentAssets.Items[0].Amount.Equal(dec("10100.00")))
	assert.True(t, sheet.NonCurrentAssets.Total.Equal(dec("2500.00")))
	assert.True(t, sheet.TotalAssets.Equal(dec("12600.00")))
	assert.True(t, sheet.TotalLiabilities.IsZero())
	assert.True(t, sheet.TotalEquity.Equal(dec("10000.00")))
}

func TestReportService_IncomeStatement(t *testing.T) {
	f := newFixture(t)
	seedLedger(t, f)

	st, err := newReports(t, f).GenerateIncomeStatement(context.Background(), date("2025-01-01"), date("2025-01-31"))
	require.NoError(t, err)

	assert.True(t, st.Revenue.Equal(dec("3000.00")))
	assert.True(t, st.AdminExpense.Equal(dec("400.00")))
	assert.True(t, st.OperatingProfit.Equal(dec("2600.00")))
	assert.True(t, st.NetProfit.Equal(dec("2600.00")))

	feb, err := newReports(t, f).GenerateIncomeStatement(context.Background(), date("2025-02-01"), date("2025-02-28"))
	require.NoError(t, err)
	assert.True(t, feb.Revenue.Equal(dec("800.00")))
}

func TestReportService_CashFlow(t *testing.T) {
	f := newFixture(t)
	seedLedger(t, f)

	cf, err := newReports(t, f).GenerateCashFlow(context.Background(), date("2025-01-01"), date("2025-01-31"))
	require.NoError(t, err)

	assert.True(t, cf.OperatingActivities.Equal(dec("2600.00")))
	assert.True(t, cf.InvestingActivities.Equal(dec("-2500.00")))
	assert.True(t, cf.FinancingActivities.Equal(dec("10000.00")))
	assert.True(t, cf.NetCashFlow.Equal(dec("10100.00")))
}

func TestReportService_ReviewedEntriesCount(t *testing.T) {
	f := newFixture(t)
	journals := NewJournalService(f.store, nil, f.clock())
	entry := f.posted(t, journals, f.entry("2025-01-10", "1002", "6001", "3000.00", "sales"))
	_, err := journals.Review(context.Background(), entry.ID, "auditor")
	require.NoError(t, err)

	st, err := newReports(t, f).GenerateIncomeStatement(context.Background(), date("2025-01-01"), date("2025-01-31"))
	require.NoError(t, err)
	assert.True(t, st.Revenue.Equal(dec("3000.00")))
}

func TestReportService_PeriodValidation(t *testing.T) {
	f := newFixture(t)
	reports := newReports(t, f)
	ctx := context.Background()

	_, err := reports.GenerateIncomeStatement(ctx, date("2025-02-01"), date("2025-01-01"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = reports.GenerateCashFlow(ctx, date("2025-01-01"), date("2024-12-31"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
