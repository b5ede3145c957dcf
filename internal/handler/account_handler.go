package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledger-recon/internal/domain"
	"ledger-recon/internal/service"
	"ledger-recon/pkg/logger"
	"ledger-recon/pkg/response"
)

type AccountHandler struct {
	service service.AccountService
}

func NewAccountHandler(service service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

type CreateAccountRequest struct {
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY COST PROFIT_LOSS"`
	NormalSide string `json:"normal_side" binding:"required,oneof=DEBIT CREDIT"`
	ParentID   *int64 `json:"parent_id"`
	Enabled    *bool  `json:"enabled"`
}

// CreateAccount godoc
// @Summary Create an account
// @Description Add an account to the chart of accounts
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body CreateAccountRequest true "Account data"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	acc := &domain.Account{
		Code:       req.Code,
		Name:       req.Name,
		Type:       domain.AccountType(req.Type),
		NormalSide: domain.Side(req.NormalSide),
		ParentID:   req.ParentID,
		Enabled:    req.Enabled == nil || *req.Enabled,
	}

	if err := h.service.Create(c.Request.Context(), acc); err != nil {
		logger.GetLogger().WithError(err).WithField("code", req.Code).Error("Failed to create account")
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created successfully", acc)
}

// GetAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	acc, err := h.service.Lookup(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Account retrieved successfully", acc)
}

// ListAccounts godoc
// @Summary List accounts
// @Description List the chart of accounts, or look one up by code
// @Tags accounts
// @Produce json
// @Param code query string false "Account code"
// @Success 200 {object} response.Response
// @Router /api/v1/accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	if code := c.Query("code"); code != "" {
		acc, err := h.service.FindByCode(c.Request.Context(), code)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "Account retrieved successfully", acc)
		return
	}

	accounts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Accounts retrieved successfully", accounts)
}
