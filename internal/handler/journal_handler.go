package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"ledger-recon/internal/domain"
	"ledger-recon/internal/service"
	"ledger-recon/pkg/logger"
	"ledger-recon/pkg/response"
)

type JournalHandler struct {
	service service.JournalService
}

func NewJournalHandler(service service.JournalService) *JournalHandler {
	return &JournalHandler{service: service}
}

type JournalLineRequest struct {
	AccountID     int64            `json:"account_id"`
	Side          string           `json:"side"`
	Amount        decimal.Decimal  `json:"amount"`
	Currency      string           `json:"currency"`
	ExchangeRate  decimal.Decimal  `json:"exchange_rate"`
	ForeignAmount *decimal.Decimal `json:"foreign_amount"`
	Remark        string           `json:"remark"`
}

type JournalEntryRequest struct {
	VoucherNumber string               `json:"voucher_number"`
	EntryDate     string               `json:"entry_date"`
	Description   string               `json:"description"`
	BusinessType  string               `json:"business_type"`
	BusinessID    *int64               `json:"business_id"`
	CreatedBy     string               `json:"created_by"`
	Lines         []JournalLineRequest `json:"lines"`
}

type ReviewRequest struct {
	Reviewer string `json:"reviewer" binding:"required"`
}

func (r JournalEntryRequest) toEntry(c *gin.Context) (*domain.JournalEntry, bool) {
	entryDate, ok := parseDate(c, "entry_date", r.EntryDate)
	if !ok {
		return nil, false
	}

	entry := &domain.JournalEntry{
		VoucherNumber: r.VoucherNumber,
		EntryDate:     entryDate,
		Description:   r.Description,
		BusinessType:  r.BusinessType,
		BusinessID:    r.BusinessID,
		CreatedBy:     r.CreatedBy,
		Lines:         make([]domain.JournalLine, 0, len(r.Lines)),
	}
	for _, l := range r.Lines {
		entry.Lines = append(entry.Lines, domain.JournalLine{
			AccountID:     l.AccountID,
			Side:          domain.Side(l.Side),
			Amount:        l.Amount,
			Currency:      l.Currency,
			ExchangeRate:  l.ExchangeRate,
			ForeignAmount: l.ForeignAmount,
			Remark:        l.Remark,
		})
	}
	return entry, true
}

// SaveEntry godoc
// @Summary Save a journal entry
// @Description Validate and store a draft voucher. The voucher number is assigned when omitted.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param entry body JournalEntryRequest true "Journal entry"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/journal-entries [post]
func (h *JournalHandler) SaveEntry(c *gin.Context) {
	var req JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	entry, ok := req.toEntry(c)
	if !ok {
		return
	}

	saved, err := h.service.Save(c.Request.Context(), entry)
	if err != nil {
		logger.GetLogger().WithError(err).Warn("Failed to save journal entry")
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Journal entry saved successfully", saved)
}

// UpdateEntry godoc
// @Summary Update a draft journal entry
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param entry body JournalEntryRequest true "Journal entry"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /api/v1/journal-entries/{id} [put]
func (h *JournalHandler) UpdateEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	entry, ok := req.toEntry(c)
	if !ok {
		return
	}
	entry.ID = id

	saved, err := h.service.Save(c.Request.Context(), entry)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Journal entry updated successfully", saved)
}

// GetEntry godoc
// @Summary Get a journal entry
// @Tags journal-entries
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/journal-entries/{id} [get]
func (h *JournalHandler) GetEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entry, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Journal entry retrieved successfully", entry)
}

// ListEntries godoc
// @Summary List journal entries
// @Description Entries in a date range, optionally by status. Without dates the latest entries are returned.
// @Tags journal-entries
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param status query string false "DRAFT, POSTED or REVIEWED"
// @Param limit query int false "Number of latest entries"
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /api/v1/journal-entries [get]
func (h *JournalHandler) ListEntries(c *gin.Context) {
	startDate, ok := parseDate(c, "start_date", c.Query("start_date"))
	if !ok {
		return
	}
	endDate, ok := parseDate(c, "end_date", c.Query("end_date"))
	if !ok {
		return
	}
	status := domain.EntryStatus(c.Query("status"))

	if startDate.IsZero() && endDate.IsZero() && status == "" {
		limit, _ := strconv.Atoi(c.Query("limit"))
		entries, err := h.service.Latest(c.Request.Context(), limit)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "Journal entries retrieved successfully", entries)
		return
	}

	entries, err := h.service.FindByDateRange(c.Request.Context(), startDate, endDate, status)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Journal entries retrieved successfully", entries)
}

// PostEntry godoc
// @Summary Post a journal entry
// @Tags journal-entries
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/journal-entries/{id}/post [post]
func (h *JournalHandler) PostEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entry, err := h.service.Post(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Journal entry posted successfully", entry)
}

// ReviewEntry godoc
// @Summary Review a posted journal entry
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param request body ReviewRequest true "Reviewer"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/journal-entries/{id}/review [post]
func (h *JournalHandler) ReviewEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	entry, err := h.service.Review(c.Request.Context(), id, req.Reviewer)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Journal entry reviewed successfully", entry)
}

// DeleteEntry godoc
// @Summary Delete a draft journal entry
// @Tags journal-entries
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/journal-entries/{id} [delete]
func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Journal entry deleted successfully", nil)
}
