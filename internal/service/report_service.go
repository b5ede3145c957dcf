package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"ledger-recon/internal/balance"
	"ledger-recon/internal/domain"
	"ledger-recon/internal/repository"
	"ledger-recon/internal/statement"
	"ledger-recon/pkg/logger"
)

type ReportService interface {
	GenerateBalanceSheet(ctx context.Context, asOf time.Time) (*statement.BalanceSheet, error)
	GenerateIncomeStatement(ctx context.Context, startDate, endDate time.Time) (*statement.IncomeStatement, error)
	GenerateCashFlow(ctx context.Context, startDate, endDate time.Time) (*statement.CashFlow, error)
}

type reportService struct {
	store       repository.Store
	mapping     *statement.Mapping
	companyName string
}

func NewReportService(store repository.Store, mapping *statement.Mapping, companyName string) ReportService {
	return &reportService{
		store:       store,
		mapping:     mapping,
		companyName: companyName,
	}
}

func (s *reportService) GenerateBalanceSheet(ctx context.Context, asOf time.Time) (*statement.BalanceSheet, error) {
	if asOf.IsZero() {
		return nil, domain.NewValidationError("as-of date is required")
	}

	chart, entries, err := s.load(ctx, time.Time{}, asOf)
	if err != nil {
		return nil, err
	}

	sheet := s.mapping.BuildBalanceSheet(balance.Compute(entries, chart))
	sheet.CompanyName = s.companyName
	sheet.AsOf = domain.DateOf(asOf)

	logger.GetLogger().WithFields(map[string]interface{}{
		"as_of":        sheet.AsOf.Format(domain.DateLayout),
		"entries":      len(entries),
		"total_assets": sheet.TotalAssets.String(),
	}).Info("Balance sheet generated")

	return &sheet, nil
}

func (s *reportService) GenerateIncomeStatement(ctx context.Context, startDate, endDate time.Time) (*statement.IncomeStatement, error) {
	if err := validatePeriod(startDate, endDate); err != nil {
		return nil, err
	}

	chart, entries, err := s.load(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	st := s.mapping.BuildIncomeStatement(balance.Compute(entries, chart))
	st.CompanyName = s.companyName
	st.StartDate = domain.DateOf(startDate)
	st.EndDate = domain.DateOf(endDate)

	logger.GetLogger().WithFields(map[string]interface{}{
		"start_date": st.StartDate.Format(domain.DateLayout),
		"end_date":   st.EndDate.Format(domain.DateLayout),
		"net_profit": st.NetProfit.String(),
	}).Info("Income statement generated")

	return &st, nil
}

func (s *reportService) GenerateCashFlow(ctx context.Context, startDate, endDate time.Time) (*statement.CashFlow, error) {
	if err := validatePeriod(startDate, endDate); err != nil {
		return nil, err
	}

	chart, entries, err := s.load(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	cf := s.mapping.BuildCashFlow(entries, chart)
	cf.CompanyName = s.companyName
	cf.StartDate = domain.DateOf(startDate)
	cf.EndDate = domain.DateOf(endDate)

	logger.GetLogger().WithFields(map[string]interface{}{
		"start_date":    cf.StartDate.Format(domain.DateLayout),
		"end_date":      cf.EndDate.Format(domain.DateLayout),
		"net_cash_flow": cf.NetCashFlow.String(),
	}).Info("Cash flow statement generated")

	return &cf, nil
}

// load fetches the chart and the effective entries of [from, to] concurrently
func (s *reportService) load(ctx context.Context, from, to time.Time) (domain.Chart, []domain.JournalEntry, error) {
	var accounts []domain.Account
	var entries []domain.JournalEntry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.store.Accounts().List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.store.Journals().Find(gctx, domain.EntryFilter{From: from, To: to})
		return err
	})
	if err := g.Wait(); err != nil {
		logger.GetLogger().WithError(err).Error("Failed to load ledger for statement")
		return nil, nil, err
	}

	return domain.NewChart(accounts), effective(entries), nil
}

func validatePeriod(startDate, endDate time.Time) error {
	if startDate.IsZero() || endDate.IsZero() {
		return domain.NewValidationError("start and end dates are required")
	}
	if startDate.After(endDate) {
		return domain.NewValidationError("start date cannot be after end date")
	}
	return nil
}
