// Package statement turns account balances into financial statements.
// The grouping of account codes into line items is loaded from YAML.
package statement

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

//go:embed mapping.yaml
var defaultMapping []byte

// Cash flow categories
const (
	Operating = "operating"
	Investing = "investing"
	Financing = "financing"
)

type Mapping struct {
	BalanceSheet    BalanceSheetMapping    `yaml:"balance_sheet"`
	IncomeStatement IncomeStatementMapping `yaml:"income_statement"`
	CashFlow        CashFlowMapping        `yaml:"cash_flow"`
}

// ItemMapping defines one statement line item.
type ItemMapping struct {
	Key   string   `yaml:"key"`
	Name  string   `yaml:"name"`
	Plus  []string `yaml:"plus" validate:"required,min=1,dive,required"`
	Minus []string `yaml:"minus" validate:"dive,required"`
}

type BalanceSheetMapping struct {
	CurrentAssets         []ItemMapping `yaml:"current_assets" validate:"dive"`
	NonCurrentAssets      []ItemMapping `yaml:"non_current_assets" validate:"dive"`
	CurrentLiabilities    []ItemMapping `yaml:"current_liabilities" validate:"dive"`
	NonCurrentLiabilities []ItemMapping `yaml:"non_current_liabilities" validate:"dive"`
	Equity                []ItemMapping `yaml:"equity" validate:"dive"`
}

type IncomeStatementMapping struct {
	Revenue             []string `yaml:"revenue" validate:"required,min=1"`
	OtherRevenue        []string `yaml:"other_revenue"`
	Cost                []string `yaml:"cost"`
	TaxesAndSurcharges  []string `yaml:"taxes_and_surcharges"`
	SellingExpense      []string `yaml:"selling_expense"`
	AdminExpense        []string `yaml:"admin_expense"`
	FinanceExpense      []string `yaml:"finance_expense"`
	NonOperatingIncome  []string `yaml:"non_operating_income"`
	NonOperatingExpense []string `yaml:"non_operating_expense"`
	IncomeTax           []string `yaml:"income_tax"`
}

type CashFlowMapping struct {
	MonetaryPrefixes []string          `yaml:"monetary_prefixes" validate:"required,min=1,dive,required"`
	DefaultCategory  string            `yaml:"default_category" validate:"required,oneof=operating investing financing"`
	Categories       map[string]string `yaml:"categories" validate:"dive,keys,required,endkeys,oneof=operating investing financing"`
}

// DefaultMapping returns the built-in chart grouping.
func DefaultMapping() (*Mapping, error) {
	return ParseMapping(defaultMapping)
}

// LoadMapping reads a mapping file, or the built-in one when path is empty.
func LoadMapping(path string) (*Mapping, error) {
	if path == "" {
		return DefaultMapping()
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("statement: read mapping: %w", err)
	}
	return ParseMapping(buf)
}

func ParseMapping(buf []byte) (*Mapping, error) {
	var m Mapping
	if err := yaml.Unmarshal(buf, &m); err != nil {
		return nil, fmt.Errorf("statement: parse mapping: %w", err)
	}
	if err := validator.New().Struct(&m); err != nil {
		return nil, fmt.Errorf("statement: invalid mapping: %w", err)
	}
	return &m, nil
}

// MonetaryCodes lists the account code prefixes treated as cash or bank.
func (m *Mapping) MonetaryCodes() []string {
	return m.CashFlow.MonetaryPrefixes
}
