package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"ledger-recon/internal/service"
	"ledger-recon/pkg/logger"
	"ledger-recon/pkg/response"
)

type ReconciliationHandler struct {
	service service.ReconciliationService
}

func NewReconciliationHandler(service service.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{service: service}
}

type AutoMatchRequest struct {
	BankAccount string `json:"bank_account" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
}

type ManualMatchRequest struct {
	TransactionID int64 `json:"transaction_id" binding:"required"`
	EntryID       int64 `json:"entry_id" binding:"required"`
}

type GenerateReportRequest struct {
	BankAccount string          `json:"bank_account" binding:"required"`
	AsOf        string          `json:"as_of" binding:"required"`
	BankBalance decimal.Decimal `json:"bank_balance"`
	Preparer    string          `json:"preparer"`
}

// AutoMatch godoc
// @Summary Match bank transactions to ledger entries
// @Description Pair unmatched transactions with posted entries on the same date and amount
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param request body AutoMatchRequest true "Matching window"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/reconciliation/auto-match [post]
func (h *ReconciliationHandler) AutoMatch(c *gin.Context) {
	var req AutoMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	startDate, ok := requireDate(c, "start_date", req.StartDate)
	if !ok {
		return
	}
	endDate, ok := requireDate(c, "end_date", req.EndDate)
	if !ok {
		return
	}

	summary, err := h.service.AutoMatch(c.Request.Context(), req.BankAccount, startDate, endDate)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("bank_account", req.BankAccount).Error("Auto match failed")
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Auto match completed", summary)
}

// ManualMatch godoc
// @Summary Pair a bank transaction with a journal entry by hand
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param request body ManualMatchRequest true "Pair"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/reconciliation/manual-match [post]
func (h *ReconciliationHandler) ManualMatch(c *gin.Context) {
	var req ManualMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	tx, err := h.service.ManualMatch(c.Request.Context(), req.TransactionID, req.EntryID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Transaction matched successfully", tx)
}

// Unmatch godoc
// @Summary Return a bank transaction to the unmatched pool
// @Tags reconciliation
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/reconciliation/unmatch/{id} [post]
func (h *ReconciliationHandler) Unmatch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tx, err := h.service.Unmatch(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Transaction unmatched successfully", tx)
}

// MarkOutstanding godoc
// @Summary Mark an unmatched bank transaction as outstanding
// @Tags reconciliation
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/reconciliation/outstanding/{id} [post]
func (h *ReconciliationHandler) MarkOutstanding(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tx, err := h.service.MarkOutstanding(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Transaction marked outstanding", tx)
}

// GenerateReport godoc
// @Summary Generate a bank reconciliation report
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param request body GenerateReportRequest true "Report parameters"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/reconciliation/reports [post]
func (h *ReconciliationHandler) GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	asOf, ok := requireDate(c, "as_of", req.AsOf)
	if !ok {
		return
	}

	bundle, err := h.service.GenerateReconciliationReport(c.Request.Context(), req.BankAccount, asOf, req.BankBalance, req.Preparer)
	if err != nil {
		logger.GetLogger().WithError(err).WithField("bank_account", req.BankAccount).Error("Failed to generate reconciliation report")
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Reconciliation report generated successfully", bundle)
}

// GetReport godoc
// @Summary Get a reconciliation report
// @Tags reconciliation
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/reconciliation/reports/{id} [get]
func (h *ReconciliationHandler) GetReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	bundle, err := h.service.GetReport(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Reconciliation report retrieved successfully", bundle)
}

// ListReports godoc
// @Summary List reconciliation reports of a bank account
// @Tags reconciliation
// @Produce json
// @Param bank_account query string true "Bank account"
// @Success 200 {object} response.Response
// @Router /api/v1/reconciliation/reports [get]
func (h *ReconciliationHandler) ListReports(c *gin.Context) {
	reports, err := h.service.ListReports(c.Request.Context(), c.Query("bank_account"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Reconciliation reports retrieved successfully", reports)
}

// Statistics godoc
// @Summary Count bank transactions per reconciliation status
// @Tags reconciliation
// @Produce json
// @Param bank_account query string false "Bank account"
// @Success 200 {object} response.Response
// @Router /api/v1/reconciliation/statistics [get]
// @Router /api/v1/bank-transactions/statistics [get]
func (h *ReconciliationHandler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context(), c.Query("bank_account"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Statistics retrieved successfully", stats)
}
