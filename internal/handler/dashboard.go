package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradejournal/internal/repository"
	"tradejournal/internal/service"
)

type DashboardHandler struct {
	Dashboard *service.DashboardService
}

func (h *DashboardHandler) Register(r *gin.Engine) {
	g := r.Group("/api/v1/dashboard")
	g.GET("/stats", h.stats)
	g.GET("/equity-curve", h.equityCurve)
	g.GET("/snapshots", h.snapshots)
}

// @Summary Aggregate statistics for the active account
// @Tags dashboard
// @Param range query string false "all|today|yesterday|this-week|last-week|this-month|last-month|3-months|this-year|last-year"
// @Success 200 {object} apiResponse
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) stats(c *gin.Context) {
	if h.Dashboard == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	out, err := h.Dashboard.Stats(c.Request.Context(), c.Query("range"))
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, out, nil)
}

// @Summary Cumulative PnL curve over the whole journal
// @Tags dashboard
// @Success 200 {object} apiResponse
// @Router /api/v1/dashboard/equity-curve [get]
func (h *DashboardHandler) equityCurve(c *gin.Context) {
	if h.Dashboard == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	curve, err := h.Dashboard.EquityCurve(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, curve, map[string]any{"points": len(curve)})
}

// @Summary Stored balance history
// @Tags dashboard
// @Param account_id query string false "defaults to the active account"
// @Param since query string false "RFC3339 or yyyy-MM-dd lower bound"
// @Param until query string false "RFC3339 or yyyy-MM-dd upper bound"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} apiResponse
// @Router /api/v1/dashboard/snapshots [get]
func (h *DashboardHandler) snapshots(c *gin.Context) {
	if h.Dashboard == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	params := repository.ListBalanceSnapshotsParams{
		Limit:     intQuery(c, "limit", 0),
		Offset:    intQuery(c, "offset", 0),
		AccountID: strQueryPtr(c, "account_id"),
		Since:     timeQueryPtr(c, "since"),
		Until:     timeQueryPtr(c, "until"),
	}
	items, err := h.Dashboard.Snapshots(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}
