package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledger-recon/internal/service"
	"ledger-recon/pkg/response"
)

// ReportHandler serves the financial statements
type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(service service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// BalanceSheet godoc
// @Summary Balance sheet as of a date
// @Tags reports
// @Produce json
// @Param as_of query string true "As-of date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /api/v1/reports/balance-sheet [get]
func (h *ReportHandler) BalanceSheet(c *gin.Context) {
	asOf, ok := requireDate(c, "as_of", c.Query("as_of"))
	if !ok {
		return
	}

	sheet, err := h.service.GenerateBalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Balance sheet generated successfully", sheet)
}

// IncomeStatement godoc
// @Summary Income statement for a period
// @Tags reports
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /api/v1/reports/income-statement [get]
func (h *ReportHandler) IncomeStatement(c *gin.Context) {
	startDate, ok := requireDate(c, "start_date", c.Query("start_date"))
	if !ok {
		return
	}
	endDate, ok := requireDate(c, "end_date", c.Query("end_date"))
	if !ok {
		return
	}

	statement, err := h.service.GenerateIncomeStatement(c.Request.Context(), startDate, endDate)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Income statement generated successfully", statement)
}

// CashFlow godoc
// @Summary Cash flow statement for a period
// @Tags reports
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /api/v1/reports/cash-flow [get]
func (h *ReportHandler) CashFlow(c *gin.Context) {
	startDate, ok := requireDate(c, "start_date", c.Query("start_date"))
	if !ok {
		return
	}
	endDate, ok := requireDate(c, "end_date", c.Query("end_date"))
	if !ok {
		return
	}

	cashFlow, err := h.service.GenerateCashFlow(c.Request.Context(), startDate, endDate)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Cash flow statement generated successfully", cashFlow)
}
