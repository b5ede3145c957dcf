package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ledger-recon/internal/domain"
	"ledger-recon/pkg/logger"
)

// BankStatementParser streams bank statement rows in batches
type BankStatementParser interface {
	Parse(r io.Reader, batchSize int, callback func([]domain.BankTransaction) error) error
}

// CSVBankStatementParser reads one account's statement export. Required
// columns are transaction_no, date and amount. Without a type column the
// sign of amount gives the direction.
type CSVBankStatementParser struct {
	bankAccount string
	bankName    string
}

func NewCSVBankStatementParser(bankAccount, bankName string) *CSVBankStatementParser {
	return &CSVBankStatementParser{bankAccount: bankAccount, bankName: bankName}
}

var requiredColumns = []string{"transaction_no", "date", "amount"}

// ParseFile opens filePath and parses it
func (p *CSVBankStatementParser) ParseFile(filePath string, batchSize int, callback func([]domain.BankTransaction) error) error {
	file, err := os.Open(filePath)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("file", filePath).Error("Failed to open file")
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file, batchSize, callback)
}

// Parse reads CSV rows and hands them to callback in batches. Rows that fail
// to parse are logged and skipped.
func (p *CSVBankStatementParser) Parse(r io.Reader, batchSize int, callback func([]domain.BankTransaction) error) error {
	if batchSize <= 0 {
		batchSize = 1000
	}

	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		logger.GetLogger().WithError(err).Error("Failed to read CSV header")
		return domain.NewValidationError("failed to read CSV header: %v", err)
	}

	columnMap := mapColumns(header)
	if missing := missingColumns(columnMap); len(missing) > 0 {
		return domain.NewValidationError("invalid CSV format: missing required columns (%s)", strings.Join(missing, ", "))
	}

	batch := make([]domain.BankTransaction, 0, batchSize)
	lineNumber := 1
	skipped := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNumber++
		if err != nil {
			logger.GetLogger().WithError(err).WithField("line", lineNumber).Warn("Failed to read CSV row, skipping")
			skipped++
			continue
		}

		tx, err := p.parseRecord(record, columnMap)
		if err != nil {
			logger.GetLogger().WithError(err).WithField("line", lineNumber).Warn("Failed to parse record, skipping")
			skipped++
			continue
		}

		batch = append(batch, *tx)

		if len(batch) >= batchSize {
			if err := callback(batch); err != nil {
				return err
			}
			batch = make([]domain.BankTransaction, 0, batchSize)
		}
	}

	if len(batch) > 0 {
		if err := callback(batch); err != nil {
			return err
		}
	}

	if skipped > 0 {
		logger.GetLogger().WithFields(map[string]interface{}{
			"bank_account": p.bankAccount,
			"skipped":      skipped,
		}).Warn("Bank statement import skipped rows")
	}

	return nil
}

func (p *CSVBankStatementParser) parseRecord(record []string, columnMap map[string]int) (*domain.BankTransaction, error) {
	field := func(name string) string {
		i, ok := columnMap[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	transactionNo := field("transaction_no")
	if transactionNo == "" {
		return nil, fmt.Errorf("empty transaction_no")
	}

	amountStr := field("amount")
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("invalid amount '%s': %w", amountStr, err)
	}

	dateStr := field("date")
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date '%s': %w", dateStr, err)
	}

	txType, err := parseType(field("type"), amount)
	if err != nil {
		return nil, err
	}

	balance := decimal.Zero
	if s := field("balance"); s != "" {
		balance, err = decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid balance '%s': %w", s, err)
		}
	}

	return &domain.BankTransaction{
		BankAccount:        p.bankAccount,
		BankName:           p.bankName,
		TransactionDate:    domain.DateOf(date),
		TransactionNo:      transactionNo,
		Type:               txType,
		Amount:             amount.Abs(),
		Balance:            balance,
		CounterpartName:    field("counterpart_name"),
		CounterpartAccount: field("counterpart_account"),
		Purpose:            field("purpose"),
		Status:             domain.Unmatched,
	}, nil
}

func parseType(s string, amount decimal.Decimal) (domain.BankTransactionType, error) {
	switch strings.ToUpper(s) {
	case "":
		if amount.IsNegative() {
			return domain.Outflow, nil
		}
		return domain.Inflow, nil
	case string(domain.Inflow), "IN", "CREDIT":
		return domain.Inflow, nil
	case string(domain.Outflow), "OUT", "DEBIT":
		return domain.Outflow, nil
	}
	return "", fmt.Errorf("invalid transaction type: %s", s)
}

func mapColumns(header []string) map[string]int {
	columnMap := make(map[string]int)
	for i, col := range header {
		normalized := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))
		columnMap[normalized] = i
	}
	return columnMap
}

func missingColumns(columnMap map[string]int) []string {
	var missing []string
	for _, col := range requiredColumns {
		if _, exists := columnMap[col]; !exists {
			missing = append(missing, col)
		}
	}
	return missing
}

func parseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		"20060102",
		"2006/01/02",
		"02/01/2006",
		time.RFC3339,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}
