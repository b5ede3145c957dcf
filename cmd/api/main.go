package main

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "ledger-recon/docs"
	"ledger-recon/internal/config"
	"ledger-recon/internal/database"
	"ledger-recon/internal/handler"
	"ledger-recon/internal/repository"
	"ledger-recon/internal/repository/memory"
	"ledger-recon/internal/sequence"
	"ledger-recon/internal/service"
	"ledger-recon/internal/statement"
	"ledger-recon/pkg/logger"
)

// @title Ledger and Bank Reconciliation API
// @version 1.0
// @description Double-entry voucher posting, financial statements and bank reconciliation
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Init(cfg.App.LogLevel)
	logger.GetLogger().Info("Starting Ledger Reconciliation Service")

	store, closeStore, err := openStore(cfg)
	if err != nil {
		logger.GetLogger().WithError(err).Fatal("Failed to open store")
	}
	defer closeStore()

	sequencer, err := newSequencer(cfg, store)
	if err != nil {
		logger.GetLogger().WithError(err).Fatal("Failed to set up voucher sequence")
	}

	mapping, err := statement.LoadMapping(cfg.Statement.MappingFile)
	if err != nil {
		logger.GetLogger().WithError(err).Fatal("Failed to load statement mapping")
	}

	// Initialize services
	clock := service.Clock(time.Now)
	accountService := service.NewAccountService(store)
	journalService := service.NewJournalService(store, sequencer, clock)
	bankService := service.NewBankTransactionService(store, cfg.App.BatchSize)
	reportService := service.NewReportService(store, mapping, cfg.App.CompanyName)
	reconService := service.NewReconciliationService(store, service.ReconciliationOptions{
		BookBalanceMode:     cfg.Reconciliation.BookBalanceMode,
		BankBusinessKeyword: cfg.Reconciliation.BankBusinessKeyword,
		AllowEntryReuse:     cfg.Reconciliation.AllowEntryReuse,
		MonetaryCodes:       mapping.MonetaryCodes(),
	}, clock)

	router := handler.NewRouter(handler.Handlers{
		Accounts:         handler.NewAccountHandler(accountService),
		Journals:         handler.NewJournalHandler(journalService),
		BankTransactions: handler.NewBankTransactionHandler(bankService),
		Reconciliation:   handler.NewReconciliationHandler(reconService),
		Reports:          handler.NewReportHandler(reportService),
	})

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.GetLogger().WithField("address", addr).Info("Server starting")

	if err := router.Run(addr); err != nil {
		logger.GetLogger().WithError(err).Fatal("Failed to start server")
	}
}

func openStore(cfg *config.Config) (repository.Store, func(), error) {
	if cfg.App.StoreDriver == "memory" {
		logger.GetLogger().Warn("Using in-memory store; data is lost on restart")
		return memory.NewStore(), func() {}, nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	logger.GetLogger().Info("Database connection established")

	if err := database.Migrate(db, cfg.Database.MigrationsPath); err != nil {
		db.Close()
		return nil, nil, err
	}

	return repository.NewPostgresStore(db), func() { db.Close() }, nil
}

// newSequencer returns nil for the store backend, which numbers vouchers
// inside the save transaction.
func newSequencer(cfg *config.Config, store repository.Store) (sequence.Generator, error) {
	seed := sequence.Seeder(store.Journals().MaxVoucherSequence)

	switch cfg.Ledger.SequenceBackend {
	case "local":
		return sequence.NewLocalGenerator(seed), nil
	case "redis":
		client, err := sequence.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.GetLogger().WithField("addr", cfg.Redis.Addr).Info("Redis voucher sequence enabled")
		return sequence.NewRedisGenerator(client, seed), nil
	default:
		return nil, nil
	}
}
