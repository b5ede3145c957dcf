package statement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-recon/internal/balance"
	"ledger-recon/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDefaultMapping_Loads(t *testing.T) {
	m, err := DefaultMapping()
	require.NoError(t, err)

	assert.Len(t, m.BalanceSheet.CurrentAssets, 3)
	assert.Equal(t, []string{"1601"}, m.BalanceSheet.NonCurrentAssets[0].Plus)
	assert.Equal(t, []string{"1602"}, m.BalanceSheet.NonCurrentAssets[0].Minus)
	assert.Equal(t, []string{"1001", "1002"}, m.MonetaryCodes())
	assert.Equal(t, Investing, m.Category("investment"))
	assert.Equal(t, Operating, m.Category("something-else"))
}

func TestLoadMapping_EmptyPathUsesDefault(t *testing.T) {
	m, err := LoadMapping("")
	require.NoError(t, err)
	assert.Equal(t, []string{"6001"}, m.IncomeStatement.Revenue)
}

func TestLoadMapping_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	content := `
balance_sheet:
  current_assets:
    - key: cash
      name: Cash
      plus: ["1000"]
income_statement:
  revenue: ["4000"]
cash_flow:
  monetary_prefixes: ["1000"]
  default_category: financing
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	m, err := LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, "cash", m.BalanceSheet.CurrentAssets[0].Key)
	assert.Equal(t, Financing, m.Category("sales"))
}

func TestParseMapping_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing revenue codes",
			content: `
income_statement: {}
cash_flow:
  monetary_prefixes: ["1001"]
  default_category: operating
`,
		},
		{
			name: "unknown category",
			content: `
income_statement:
  revenue: ["6001"]
cash_flow:
  monetary_prefixes: ["1001"]
  default_category: operating
  categories:
    sales: speculative
`,
		},
		{
			name: "item without codes",
			content: `
balance_sheet:
  equity:
    - key: capital
      name: Capital
income_statement:
  revenue: ["6001"]
cash_flow:
  monetary_prefixes: ["1001"]
  default_category: operating
`,
		},
		{
			name:    "not yaml",
			content: "balance_sheet: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMapping([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestBuildBalanceSheet(t *testing.T) {
	m, err := DefaultMapping()
	require.NoError(t, err)

	b := balance.Balances{
		"1001": d("100"),
		"1002": d("900"),
		"1122": d("250"),
		"1601": d("1000"),
		"1602": d("200"),
		"2201": d("300"),
		"2501": d("500"),
		"4001": d("1000"),
		"4103": d("250"),
	}

	sheet := m.BuildBalanceSheet(b)
	assert.True(t, sheet.CurrentAssets.Items[0].Amount.Equal(d("1000")))
	assert.True(t, sheet.CurrentAssets.Total.Equal(d("1250")))
	assert.True(t, sheet.NonCurrentAssets.Items[0].Amount.Equal(d("800")))
	assert.True(t, sheet.TotalAssets.Equal(d("2050")))
	assert.True(t, sheet.TotalLiabilities.Equal(d("800")))
	assert.True(t, sheet.TotalEquity.Equal(d("1250")))
}

func TestBuildIncomeStatement(t *testing.T) {
	m, err := DefaultMapping()
	require.NoError(t, err)

	b := balance.Balances{
		"6001": d("10000"),
		"6051": d("500"),
		"6401": d("6000"),
		"6403": d("100"),
		"6601": d("400"),
		"6602": d("700"),
		"6603": d("50"),
		"6301": d("200"),
		"6701": d("150"),
		"6801": d("800"),
	}

	st := m.BuildIncomeStatement(b)
	assert.True(t, st.TotalRevenue.Equal(d("10500")))
	assert.True(t, st.OperatingProfit.Equal(d("3250")))
	assert.True(t, st.TotalProfit.Equal(d("3300")))
	assert.True(t, st.NetProfit.Equal(d("2500")))
}

func TestBuildCashFlow(t *testing.T) {
	m, err := DefaultMapping()
	require.NoError(t, err)

	chart := domain.NewChart([]domain.Account{
		{ID: 1, Code: "1002", NormalSide: domain.Debit},
		{ID: 2, Code: "6001", NormalSide: domain.Credit},
		{ID: 3, Code: "1601", NormalSide: domain.Debit},
		{ID: 4, Code: "2501", NormalSide: domain.Credit},
	})
	line := func(acc int64, side domain.Side, amount string) domain.JournalLine {
		return domain.JournalLine{AccountID: acc, Side: side, Amount: d(amount)}
	}

	entries := []domain.JournalEntry{
		{BusinessType: "sales", Lines: []domain.JournalLine{line(1, domain.Debit, "1000"), line(2, domain.Credit, "1000")}},
		{BusinessType: "investment", Lines: []domain.JournalLine{line(3, domain.Debit, "300"), line(1, domain.Credit, "300")}},
		{BusinessType: "financing", Lines: []domain.JournalLine{line(1, domain.Debit, "2000"), line(4, domain.Credit, "2000")}},
		{BusinessType: "misc", Lines: []domain.JournalLine{line(2, domain.Debit, "50"), line(1, domain.Credit, "50")}},
	}

	cf := m.BuildCashFlow(entries, chart)
	assert.True(t, cf.OperatingActivities.Equal(d("950")))
	assert.True(t, cf.InvestingActivities.Equal(d("-300")))
	assert.True(t, cf.FinancingActivities.Equal(d("2000")))
	assert.True(t, cf.NetCashFlow.Equal(d("2650")))
}
