package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ledger-recon/internal/middleware"
)

// Handlers groups the HTTP handlers mounted under /api/v1
type Handlers struct {
	Accounts         *AccountHandler
	Journals         *JournalHandler
	BankTransactions *BankTransactionHandler
	Reconciliation   *ReconciliationHandler
	Reports          *ReportHandler
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.Default())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		accounts := v1.Group("/accounts")
		{
			accounts.POST("", h.Accounts.CreateAccount)
			accounts.GET("", h.Accounts.ListAccounts)
			accounts.GET("/:id", h.Accounts.GetAccount)
		}

		journals := v1.Group("/journal-entries")
		{
			journals.POST("", h.Journals.SaveEntry)
			journals.GET("", h.Journals.ListEntries)
			journals.GET("/:id", h.Journals.GetEntry)
			journals.PUT("/:id", h.Journals.UpdateEntry)
			journals.DELETE("/:id", h.Journals.DeleteEntry)
			journals.POST("/:id/post", h.Journals.PostEntry)
			journals.POST("/:id/review", h.Journals.ReviewEntry)
		}

		bank := v1.Group("/bank-transactions")
		{
			bank.POST("", h.BankTransactions.CreateTransaction)
			bank.POST("/bulk", h.BankTransactions.BulkCreateTransactions)
			bank.POST("/import", h.BankTransactions.ImportStatement)
			bank.GET("", h.BankTransactions.ListTransactions)
			bank.GET("/unreconciled", h.BankTransactions.ListUnreconciled)
			bank.GET("/statistics", h.Reconciliation.Statistics)
			bank.GET("/:id", h.BankTransactions.GetTransaction)
			bank.DELETE("/:id", h.BankTransactions.DeleteTransaction)
		}

		reconciliation := v1.Group("/reconciliation")
		{
			reconciliation.POST("/auto-match", h.Reconciliation.AutoMatch)
			reconciliation.POST("/manual-match", h.Reconciliation.ManualMatch)
			reconciliation.POST("/unmatch/:id", h.Reconciliation.Unmatch)
			reconciliation.POST("/outstanding/:id", h.Reconciliation.MarkOutstanding)
			reconciliation.POST("/reports", h.Reconciliation.GenerateReport)
			reconciliation.GET("/reports", h.Reconciliation.ListReports)
			reconciliation.GET("/reports/:id", h.Reconciliation.GetReport)
			reconciliation.GET("/statistics", h.Reconciliation.Statistics)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/balance-sheet", h.Reports.BalanceSheet)
			reports.GET("/income-statement", h.Reports.IncomeStatement)
			reports.GET("/cash-flow", h.Reports.CashFlow)
		}
	}

	return router
}
