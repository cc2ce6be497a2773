package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"tradejournal/internal/models"
	"tradejournal/internal/repository"
	"tradejournal/internal/service"
	"tradejournal/internal/stats"
)

type TradeHandler struct {
	Repo    repository.Repository
	Journal *service.JournalService
}

func (h *TradeHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/trades")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

// tradeView is a trade row enriched with its effective PnL, so clients
// never re-derive risk/RR math.
type tradeView struct {
	models.Trade
	CalculatedPnL decimal.Decimal `json:"calculated_pnl"`
}

func (h *TradeHandler) view(c *gin.Context, trades []models.Trade) []tradeView {
	accounts := map[string]*models.Account{}
	out := make([]tradeView, 0, len(trades))
	for i := range trades {
		t := trades[i]
		account, ok := accounts[t.AccountID]
		if !ok {
			account, _ = h.Repo.GetAccountByID(c.Request.Context(), t.AccountID)
			accounts[t.AccountID] = account
		}
		out = append(out, tradeView{
			Trade:         t,
			CalculatedPnL: stats.CalculatePnL(&t, account),
		})
	}
	return out
}

// @Summary List trades
// @Tags trades
// @Param account_id query string false "account filter"
// @Param session query string false "session filter"
// @Param result query string false "result filter (case-insensitive)"
// @Param symbol query string false "symbol filter"
// @Param strategy_tag query string false "strategy tag filter"
// @Param since query string false "RFC3339 or yyyy-MM-dd lower bound"
// @Param until query string false "RFC3339 or yyyy-MM-dd upper bound"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} apiResponse
// @Router /api/v1/trades [get]
func (h *TradeHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	params := repository.ListTradesParams{
		Limit:       limit,
		Offset:      offset,
		AccountID:   strQueryPtr(c, "account_id"),
		Session:     strQueryPtr(c, "session"),
		Result:      strQueryPtr(c, "result"),
		Symbol:      strQueryPtr(c, "symbol"),
		StrategyTag: strQueryPtr(c, "strategy_tag"),
		Since:       timeQueryPtr(c, "since"),
		Until:       timeQueryPtr(c, "until"),
		OrderBy:     "date",
		Asc:         boolPtr(false),
	}
	items, err := h.Repo.ListTrades(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountTrades(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, h.view(c, items), paginationMeta(limit, offset, total))
}

type createTradeRequest struct {
	ID             string           `json:"id"`
	AccountID      string           `json:"account_id"`
	Date           string           `json:"date"`
	Symbol         *string          `json:"symbol"`
	Side           *string          `json:"side"`
	Session        string           `json:"session"`
	RiskPercentage *decimal.Decimal `json:"risk_percentage"`
	RR             *decimal.Decimal `json:"rr"`
	Result         string           `json:"result"`
	PnLDollar      *decimal.Decimal `json:"pnl_dollar"`
	Notes          string           `json:"notes"`
	ImageURL       string           `json:"image_url"`
	StrategyTag    string           `json:"strategy_tag"`
	Tags           []string         `json:"tags"`
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, true
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts.UTC(), true
	}
	if ts, err := time.Parse("2006-01-02", raw); err == nil {
		return ts.UTC(), true
	}
	return time.Time{}, false
}

// @Summary Create a trade
// @Tags trades
// @Accept json
// @Param body body createTradeRequest true "trade"
// @Success 200 {object} apiResponse
// @Router /api/v1/trades [post]
func (h *TradeHandler) create(c *gin.Context) {
	if h.Journal == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req createTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		Error(c, http.StatusBadRequest, "invalid date", nil)
		return
	}
	trade := &models.Trade{
		ID:             req.ID,
		AccountID:      req.AccountID,
		Date:           date,
		Symbol:         req.Symbol,
		Side:           req.Side,
		Session:        req.Session,
		RiskPercentage: req.RiskPercentage,
		RR:             req.RR,
		Result:         req.Result,
		PnLDollar:      req.PnLDollar,
		Notes:          req.Notes,
		ImageURL:       req.ImageURL,
		StrategyTag:    req.StrategyTag,
	}
	if len(req.Tags) > 0 {
		raw, _ := json.Marshal(req.Tags)
		trade.Tags = datatypes.JSON(raw)
	}
	created, err := h.Journal.CreateTrade(c.Request.Context(), trade)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	Ok(c, h.view(c, []models.Trade{*created})[0], nil)
}

// @Summary Get a trade
// @Tags trades
// @Param id path string true "trade id"
// @Success 200 {object} apiResponse
// @Router /api/v1/trades/{id} [get]
func (h *TradeHandler) get(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	item, err := h.Repo.GetTradeByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "trade not found", nil)
		return
	}
	Ok(c, h.view(c, []models.Trade{*item})[0], nil)
}

type updateTradeRequest struct {
	Date           *string          `json:"date"`
	Symbol         *string          `json:"symbol"`
	Side           *string          `json:"side"`
	Session        *string          `json:"session"`
	RiskPercentage *decimal.Decimal `json:"risk_percentage"`
	RR             *decimal.Decimal `json:"rr"`
	Result         *string          `json:"result"`
	PnLDollar      *decimal.Decimal `json:"pnl_dollar"`
	Notes          *string          `json:"notes"`
	ImageURL       *string          `json:"image_url"`
	StrategyTag    *string          `json:"strategy_tag"`
}

// @Summary Update a trade
// @Tags trades
// @Accept json
// @Param id path string true "trade id"
// @Param body body updateTradeRequest true "fields to change"
// @Success 200 {object} apiResponse
// @Router /api/v1/trades/{id} [put]
func (h *TradeHandler) update(c *gin.Context) {
	if h.Journal == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req updateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	patch := service.TradePatch{
		Symbol:         req.Symbol,
		Side:           req.Side,
		Session:        req.Session,
		RiskPercentage: req.RiskPercentage,
		RR:             req.RR,
		Result:         req.Result,
		PnLDollar:      req.PnLDollar,
		Notes:          req.Notes,
		ImageURL:       req.ImageURL,
		StrategyTag:    req.StrategyTag,
	}
	if req.Date != nil {
		date, ok := parseDate(*req.Date)
		if !ok || date.IsZero() {
			Error(c, http.StatusBadRequest, "invalid date", nil)
			return
		}
		patch.Date = &date
	}
	updated, err := h.Journal.UpdateTrade(c.Request.Context(), id, patch)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if updated == nil {
		Error(c, http.StatusNotFound, "trade not found", nil)
		return
	}
	Ok(c, h.view(c, []models.Trade{*updated})[0], nil)
}

// @Summary Delete a trade
// @Tags trades
// @Param id path string true "trade id"
// @Success 200 {object} apiResponse
// @Router /api/v1/trades/{id} [delete]
func (h *TradeHandler) remove(c *gin.Context) {
	if h.Journal == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	ok, err := h.Journal.DeleteTrade(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if !ok {
		Error(c, http.StatusNotFound, "trade not found", nil)
		return
	}
	Ok(c, gin.H{"deleted": id}, nil)
}
