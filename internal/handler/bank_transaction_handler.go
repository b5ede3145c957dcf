package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"ledger-recon/internal/domain"
	"ledger-recon/internal/service"
	"ledger-recon/pkg/logger"
	"ledger-recon/pkg/response"
)

type BankTransactionHandler struct {
	service service.BankTransactionService
}

func NewBankTransactionHandler(service service.BankTransactionService) *BankTransactionHandler {
	return &BankTransactionHandler{service: service}
}

type BankTransactionRequest struct {
	BankAccount        string          `json:"bank_account" binding:"required"`
	BankName           string          `json:"bank_name"`
	TransactionDate    string          `json:"transaction_date" binding:"required"`
	TransactionNo      string          `json:"transaction_no" binding:"required"`
	Type               string          `json:"type" binding:"required,oneof=INFLOW OUTFLOW"`
	Amount             decimal.Decimal `json:"amount"`
	Balance            decimal.Decimal `json:"balance"`
	CounterpartName    string          `json:"counterpart_name"`
	CounterpartAccount string          `json:"counterpart_account"`
	Purpose            string          `json:"purpose"`
}

type BulkBankTransactionRequest struct {
	Transactions []BankTransactionRequest `json:"transactions" binding:"required,min=1,dive"`
}

func (r BankTransactionRequest) toTransaction(c *gin.Context) (domain.BankTransaction, bool) {
	txDate, ok := requireDate(c, "transaction_date", r.TransactionDate)
	if !ok {
		return domain.BankTransaction{}, false
	}
	return domain.BankTransaction{
		BankAccount:        r.BankAccount,
		BankName:           r.BankName,
		TransactionDate:    txDate,
		TransactionNo:      r.TransactionNo,
		Type:               domain.BankTransactionType(r.Type),
		Amount:             r.Amount,
		Balance:            r.Balance,
		CounterpartName:    r.CounterpartName,
		CounterpartAccount: r.CounterpartAccount,
		Purpose:            r.Purpose,
	}, true
}

// CreateTransaction godoc
// @Summary Record a bank transaction
// @Tags bank-transactions
// @Accept json
// @Produce json
// @Param transaction body BankTransactionRequest true "Bank transaction"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/bank-transactions [post]
func (h *BankTransactionHandler) CreateTransaction(c *gin.Context) {
	var req BankTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	tx, ok := req.toTransaction(c)
	if !ok {
		return
	}

	if err := h.service.Create(c.Request.Context(), &tx); err != nil {
		logger.GetLogger().WithError(err).WithField("transaction_no", req.TransactionNo).Error("Failed to create bank transaction")
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Bank transaction created successfully", tx)
}

// BulkCreateTransactions godoc
// @Summary Record several bank transactions atomically
// @Tags bank-transactions
// @Accept json
// @Produce json
// @Param request body BulkBankTransactionRequest true "Bank transactions"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /api/v1/bank-transactions/bulk [post]
func (h *BankTransactionHandler) BulkCreateTransactions(c *gin.Context) {
	var req BulkBankTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	transactions := make([]domain.BankTransaction, 0, len(req.Transactions))
	for _, r := range req.Transactions {
		tx, ok := r.toTransaction(c)
		if !ok {
			return
		}
		transactions = append(transactions, tx)
	}

	if err := h.service.BulkCreate(c.Request.Context(), transactions); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Bank transactions created successfully", gin.H{
		"count": len(transactions),
	})
}

// ImportStatement godoc
// @Summary Import a bank statement CSV
// @Description Upload a CSV with transaction_no, date and amount columns
// @Tags bank-transactions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Statement CSV"
// @Param bank_account formData string true "Bank account"
// @Param bank_name formData string false "Bank name"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /api/v1/bank-transactions/import [post]
func (h *BankTransactionHandler) ImportStatement(c *gin.Context) {
	bankAccount := strings.TrimSpace(c.PostForm("bank_account"))
	if bankAccount == "" {
		response.ValidationError(c, "bank_account is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing statement file", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Unreadable statement file", err.Error())
		return
	}
	defer file.Close()

	result, err := h.service.Import(c.Request.Context(), bankAccount, c.PostForm("bank_name"), file)
	if err != nil {
		logger.GetLogger().WithError(err).WithFields(map[string]interface{}{
			"bank_account": bankAccount,
			"file":         fileHeader.Filename,
		}).Error("Statement import failed")
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Bank statement imported successfully", result)
}

// GetTransaction godoc
// @Summary Get a bank transaction
// @Tags bank-transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/bank-transactions/{id} [get]
func (h *BankTransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tx, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Bank transaction retrieved successfully", tx)
}

// ListTransactions godoc
// @Summary List bank transactions
// @Tags bank-transactions
// @Produce json
// @Param bank_account query string false "Bank account"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param status query string false "UNMATCHED, MATCHED or OUTSTANDING"
// @Success 200 {object} response.Response
// @Router /api/v1/bank-transactions [get]
func (h *BankTransactionHandler) ListTransactions(c *gin.Context) {
	startDate, ok := parseDate(c, "start_date", c.Query("start_date"))
	if !ok {
		return
	}
	endDate, ok := parseDate(c, "end_date", c.Query("end_date"))
	if !ok {
		return
	}

	transactions, err := h.service.Find(c.Request.Context(), domain.BankTransactionFilter{
		BankAccount: c.Query("bank_account"),
		From:        startDate,
		To:          endDate,
		Status:      domain.ReconciliationStatus(c.Query("status")),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Bank transactions retrieved successfully", transactions)
}

// ListUnreconciled godoc
// @Summary List unmatched bank transactions
// @Tags bank-transactions
// @Produce json
// @Param bank_account query string true "Bank account"
// @Success 200 {object} response.Response
// @Router /api/v1/bank-transactions/unreconciled [get]
func (h *BankTransactionHandler) ListUnreconciled(c *gin.Context) {
	transactions, err := h.service.FindUnreconciled(c.Request.Context(), c.Query("bank_account"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Unreconciled transactions retrieved successfully", transactions)
}

// DeleteTransaction godoc
// @Summary Delete an unmatched bank transaction
// @Tags bank-transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/bank-transactions/{id} [delete]
func (h *BankTransactionHandler) DeleteTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Bank transaction deleted successfully", nil)
}
