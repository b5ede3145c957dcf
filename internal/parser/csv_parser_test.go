package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-recon/internal/domain"
)

func TestCSVBankStatementParser_ParseFile(t *testing.T) {
	tmpDir := t.TempDir()
	csvFile := filepath.Join(tmpDir, "statement.csv")

	csvContent := `transaction_no,date,amount,balance,counterpart_name,purpose
BK001,2025-03-01,500.00,10500.00,Acme Ltd,Invoice 42
BK002,2025-03-02,-200.75,10299.25,Landlord,Rent
BK003,2025/03/03,300.00,10599.25,,
`
	require.NoError(t, os.WriteFile(csvFile, []byte(csvContent), 0644))

	p := NewCSVBankStatementParser("6222-0001", "Test Bank")
	var transactions []domain.BankTransaction

	err := p.ParseFile(csvFile, 100, func(batch []domain.BankTransaction) error {
		transactions = append(transactions, batch...)
		return nil
	})

	require.NoError(t, err)
	require.Len(t, transactions, 3)

	first := transactions[0]
	assert.Equal(t, "BK001", first.TransactionNo)
	assert.Equal(t, "6222-0001", first.BankAccount)
	assert.Equal(t, "Test Bank", first.BankName)
	assert.Equal(t, domain.Inflow, first.Type)
	assert.Equal(t, domain.Unmatched, first.Status)
	assert.Equal(t, "Acme Ltd", first.CounterpartName)

	second := transactions[1]
	assert.Equal(t, domain.Outflow, second.Type)
	assert.True(t, second.Amount.Equal(decimal.RequireFromString("200.75")))
	assert.True(t, second.Balance.Equal(decimal.RequireFromString("10299.25")))
}

func TestCSVBankStatementParser_ExplicitType(t *testing.T) {
	csvContent := `Transaction_No,Date,Type,Amount
BK001,2025-03-01,OUTFLOW,80.00
BK002,2025-03-01,inflow,20.00
BK003,2025-03-01,sideways,20.00
`
	p := NewCSVBankStatementParser("6222-0001", "Test Bank")
	var transactions []domain.BankTransaction

	err := p.Parse(strings.NewReader(csvContent), 100, func(batch []domain.BankTransaction) error {
		transactions = append(transactions, batch...)
		return nil
	})

	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, domain.Outflow, transactions[0].Type)
	assert.Equal(t, domain.Inflow, transactions[1].Type)
}

func TestCSVBankStatementParser_InvalidFormat(t *testing.T) {
	csvContent := `id,value
1,100
`
	p := NewCSVBankStatementParser("6222-0001", "Test Bank")
	err := p.Parse(strings.NewReader(csvContent), 100, func(batch []domain.BankTransaction) error {
		return nil
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCSVBankStatementParser_SkipsInvalidRows(t *testing.T) {
	csvContent := `transaction_no,date,amount
BK001,2025-03-01,100.00
BK002,2025-03-02,invalid
,2025-03-03,300.00
BK004,not-a-date,400.00
BK005,2025-03-05,500.00
`
	p := NewCSVBankStatementParser("6222-0001", "Test Bank")
	var transactions []domain.BankTransaction

	err := p.Parse(strings.NewReader(csvContent), 100, func(batch []domain.BankTransaction) error {
		transactions = append(transactions, batch...)
		return nil
	})

	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "BK001", transactions[0].TransactionNo)
	assert.Equal(t, "BK005", transactions[1].TransactionNo)
}

func TestCSVBankStatementParser_Batches(t *testing.T) {
	csvContent := `transaction_no,date,amount
BK001,2025-03-01,1
BK002,2025-03-01,2
BK003,2025-03-01,3
BK004,2025-03-01,4
BK005,2025-03-01,5
`
	p := NewCSVBankStatementParser("6222-0001", "Test Bank")
	var sizes []int

	err := p.Parse(strings.NewReader(csvContent), 2, func(batch []domain.BankTransaction) error {
		sizes = append(sizes, len(batch))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, sizes)
}
