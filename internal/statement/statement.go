package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ledger-recon/internal/balance"
	"ledger-recon/internal/domain"
)

type LineItem struct {
	Key    string          `json:"key"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type Section struct {
	Items []LineItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// BalanceSheet does not assert that assets equal liabilities plus equity.
type BalanceSheet struct {
	CompanyName           string          `json:"company_name"`
	AsOf                  time.Time       `json:"as_of"`
	CurrentAssets         Section         `json:"current_assets"`
	NonCurrentAssets      Section         `json:"non_current_assets"`
	CurrentLiabilities    Section         `json:"current_liabilities"`
	NonCurrentLiabilities Section         `json:"non_current_liabilities"`
	Equity                Section         `json:"equity"`
	TotalAssets           decimal.Decimal `json:"total_assets"`
	TotalLiabilities      decimal.Decimal `json:"total_liabilities"`
	TotalEquity           decimal.Decimal `json:"total_equity"`
}

type IncomeStatement struct {
	CompanyName         string          `json:"company_name"`
	StartDate           time.Time       `json:"start_date"`
	EndDate             time.Time       `json:"end_date"`
	Revenue             decimal.Decimal `json:"revenue"`
	OtherRevenue        decimal.Decimal `json:"other_revenue"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	Cost                decimal.Decimal `json:"cost"`
	TaxesAndSurcharges  decimal.Decimal `json:"taxes_and_surcharges"`
	SellingExpense      decimal.Decimal `json:"selling_expense"`
	AdminExpense        decimal.Decimal `json:"admin_expense"`
	FinanceExpense      decimal.Decimal `json:"finance_expense"`
	OperatingProfit     decimal.Decimal `json:"operating_profit"`
	NonOperatingIncome  decimal.Decimal `json:"non_operating_income"`
	NonOperatingExpense decimal.Decimal `json:"non_operating_expense"`
	TotalProfit         decimal.Decimal `json:"total_profit"`
	IncomeTax           decimal.Decimal `json:"income_tax"`
	NetProfit           decimal.Decimal `json:"net_profit"`
}

type CashFlow struct {
	CompanyName         string          `json:"company_name"`
	StartDate           time.Time       `json:"start_date"`
	EndDate             time.Time       `json:"end_date"`
	OperatingActivities decimal.Decimal `json:"operating_activities"`
	InvestingActivities decimal.Decimal `json:"investing_activities"`
	FinancingActivities decimal.Decimal `json:"financing_activities"`
	NetCashFlow         decimal.Decimal `json:"net_cash_flow"`
}

func section(items []ItemMapping, b balance.Balances) Section {
	s := Section{Items: make([]LineItem, 0, len(items)), Total: decimal.Zero}
	for _, item := range items {
		amount := b.Net(item.Plus, item.Minus)
		s.Items = append(s.Items, LineItem{Key: item.Key, Name: item.Name, Amount: amount})
		s.Total = s.Total.Add(amount)
	}
	return s
}

// BuildBalanceSheet groups balances of entries posted up to the report date.
func (m *Mapping) BuildBalanceSheet(b balance.Balances) BalanceSheet {
	bs := m.BalanceSheet
	sheet := BalanceSheet{
		CurrentAssets:         section(bs.CurrentAssets, b),
		NonCurrentAssets:      section(bs.NonCurrentAssets, b),
		CurrentLiabilities:    section(bs.CurrentLiabilities, b),
		NonCurrentLiabilities: section(bs.NonCurrentLiabilities, b),
		Equity:                section(bs.Equity, b),
	}
	sheet.TotalAssets = sheet.CurrentAssets.Total.Add(sheet.NonCurrentAssets.Total)
	sheet.TotalLiabilities = sheet.CurrentLiabilities.Total.Add(sheet.NonCurrentLiabilities.Total)
	sheet.TotalEquity = sheet.Equity.Total
	return sheet
}

// BuildIncomeStatement derives profit figures from period balances.
func (m *Mapping) BuildIncomeStatement(b balance.Balances) IncomeStatement {
	is := m.IncomeStatement
	st := IncomeStatement{
		Revenue:             b.Sum(is.Revenue...),
		OtherRevenue:        b.Sum(is.OtherRevenue...),
		Cost:                b.Sum(is.Cost...),
		TaxesAndSurcharges:  b.Sum(is.TaxesAndSurcharges...),
		SellingExpense:      b.Sum(is.SellingExpense...),
		AdminExpense:        b.Sum(is.AdminExpense...),
		FinanceExpense:      b.Sum(is.FinanceExpense...),
		NonOperatingIncome:  b.Sum(is.NonOperatingIncome...),
		NonOperatingExpense: b.Sum(is.NonOperatingExpense...),
		IncomeTax:           b.Sum(is.IncomeTax...),
	}

	st.TotalRevenue = st.Revenue.Add(st.OtherRevenue)
	st.OperatingProfit = st.TotalRevenue.
		Sub(st.Cost).
		Sub(st.TaxesAndSurcharges).
		Sub(st.SellingExpense).
		Sub(st.AdminExpense).
		Sub(st.FinanceExpense)
	st.TotalProfit = st.OperatingProfit.Add(st.NonOperatingIncome).Sub(st.NonOperatingExpense)
	st.NetProfit = st.TotalProfit.Sub(st.IncomeTax)
	return st
}

// Category resolves the cash flow bucket of a business type.
func (m *Mapping) Category(businessType string) string {
	if c, ok := m.CashFlow.Categories[strings.ToLower(businessType)]; ok {
		return c
	}
	return m.CashFlow.DefaultCategory
}

func (m *Mapping) isMonetary(code string) bool {
	for _, prefix := range m.CashFlow.MonetaryPrefixes {
		if strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}

// BuildCashFlow buckets movements on cash and bank accounts by the
// business type of their entry. Credit lines are outflows.
func (m *Mapping) BuildCashFlow(entries []domain.JournalEntry, chart domain.Chart) CashFlow {
	buckets := map[string]decimal.Decimal{
		Operating: decimal.Zero,
		Investing: decimal.Zero,
		Financing: decimal.Zero,
	}

	for _, entry := range entries {
		category := m.Category(entry.BusinessType)
		for _, line := range entry.Lines {
			code := line.AccountCode
			if acc, ok := chart.Account(line.AccountID); ok {
				code = acc.Code
			}
			if !m.isMonetary(code) {
				continue
			}

			amount := line.Amount
			if line.Side == domain.Credit {
				amount = amount.Neg()
			}
			buckets[category] = buckets[category].Add(amount)
		}
	}

	cf := CashFlow{
		OperatingActivities: buckets[Operating],
		InvestingActivities: buckets[Investing],
		FinancingActivities: buckets[Financing],
	}
	cf.NetCashFlow = cf.OperatingActivities.Add(cf.InvestingActivities).Add(cf.FinancingActivities)
	return cf
}
