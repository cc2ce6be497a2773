package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"tradejournal/internal/models"
	"tradejournal/internal/repository"
	"tradejournal/internal/service"
)

type AccountHandler struct {
	Repo     repository.Repository
	Accounts *service.AccountService
}

func (h *AccountHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/accounts")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/active", h.active)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.POST("/:id/activate", h.activate)
	g.DELETE("/:id", h.remove)
}

// @Summary List accounts
// @Tags accounts
// @Success 200 {object} apiResponse
// @Router /api/v1/accounts [get]
func (h *AccountHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	items, err := h.Repo.ListAccounts(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

type createAccountRequest struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
}

// @Summary Create an account
// @Tags accounts
// @Accept json
// @Param body body createAccountRequest true "account"
// @Success 200 {object} apiResponse
// @Router /api/v1/accounts [post]
func (h *AccountHandler) create(c *gin.Context) {
	if h.Accounts == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	created, err := h.Accounts.CreateAccount(c.Request.Context(), &models.Account{
		ID:              req.ID,
		Name:            req.Name,
		StartingBalance: req.StartingBalance,
	})
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	Ok(c, created, nil)
}

// @Summary Get the active account
// @Tags accounts
// @Success 200 {object} apiResponse
// @Router /api/v1/accounts/active [get]
func (h *AccountHandler) active(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	item, err := h.Repo.GetActiveAccount(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "no active account", nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Get an account
// @Tags accounts
// @Param id path string true "account id"
// @Success 200 {object} apiResponse
// @Router /api/v1/accounts/{id} [get]
func (h *AccountHandler) get(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	item, err := h.Repo.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "account not found", nil)
		return
	}
	Ok(c, item, nil)
}

type updateAccountRequest struct {
	Name            *string          `json:"name"`
	StartingBalance *decimal.Decimal `json:"starting_balance"`
}

// @Summary Update an account
// @Tags accounts
// @Accept json
// @Param id path string true "account id"
// @Param body body updateAccountRequest true "fields to change"
// @Success 200 {object} apiResponse
// @Router /api/v1/accounts/{id} [put]
func (h *AccountHandler) update(c *gin.Context) {
	if h.Accounts == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	updated, err := h.Accounts.UpdateAccount(c.Request.Context(), id, service.AccountPatch{
		Name:            req.Name,
		StartingBalance: req.StartingBalance,
	})
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if updated == nil {
		Error(c, http.StatusNotFound, "account not found", nil)
		return
	}
	Ok(c, updated, nil)
}

// @Summary Activate an account
// @Tags accounts
// @Param id path string true "account id"
// @Success 200 {object} apiResponse
// @Router /api/v1/accounts/{id}/activate [post]
func (h *AccountHandler) activate(c *gin.Context) {
	if h.Accounts == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	activated, err := h.Accounts.Activate(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if activated == nil {
		Error(c, http.StatusNotFound, "account not found", nil)
		return
	}
	Ok(c, activated, nil)
}

// @Summary Delete an account and its trades
// @Tags accounts
// @Param id path string true "account id"
// @Success 200 {object} apiResponse
// @Router /api/v1/accounts/{id} [delete]
func (h *AccountHandler) remove(c *gin.Context) {
	if h.Accounts == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	ok, err := h.Accounts.DeleteAccount(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if !ok {
		Error(c, http.StatusNotFound, "account not found", nil)
		return
	}
	Ok(c, gin.H{"deleted": id}, nil)
}
