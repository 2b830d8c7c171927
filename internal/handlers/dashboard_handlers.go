package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"workshoppro/internal/common"
	"workshoppro/internal/logging"
	"workshoppro/internal/models"

	"github.com/labstack/echo/v4"
)

// DashboardService is the analytics surface the dashboard reads.
type DashboardService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	StockAlerts(ctx context.Context) ([]models.StockAlert, error)
	RecentOrders(ctx context.Context, limit int) ([]models.RecentOrder, error)
}

type DashboardRefresh struct {
	Stats        time.Duration
	RecentOrders time.Duration
	StockAlerts  time.Duration
}

type DashboardHandlers struct {
	analytics DashboardService
	refresh   DashboardRefresh
	logger    *logging.Logger
}

func NewDashboardHandlers(analytics DashboardService, refresh DashboardRefresh, logger *logging.Logger) *DashboardHandlers {
	if logger == nil {
		logger = logging.Nop()
	}
	return &DashboardHandlers{analytics: analytics, refresh: refresh, logger: logger}
}

func (h *DashboardHandlers) Register(g *echo.Group) {
	g.GET("/dashboard/stats", h.GetStats)
	g.GET("/dashboard/stock-alerts", h.GetStockAlerts)
	g.GET("/dashboard/recent-orders", h.GetRecentOrders)
}

func (h *DashboardHandlers) GetStats(c echo.Context) error {
	stats, err := h.analytics.DashboardStats(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, "dashboard stats", err)
	}
	setMaxAge(c, h.refresh.Stats)
	return c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandlers) GetStockAlerts(c echo.Context) error {
	alerts, err := h.analytics.StockAlerts(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, "stock alerts", err)
	}
	setMaxAge(c, h.refresh.StockAlerts)
	return c.JSON(http.StatusOK, alerts)
}

func (h *DashboardHandlers) GetRecentOrders(c echo.Context) error {
	limit := models.DefaultRecentOrdersLimit
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			return common.SendValidationError(c, "limit", "must be between 1 and 100")
		}
		limit = n
	}

	orders, err := h.analytics.RecentOrders(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, h.logger, "recent orders", err)
	}
	setMaxAge(c, h.refresh.RecentOrders)
	return c.JSON(http.StatusOK, orders)
}

func setMaxAge(c echo.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	c.Response().Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(d.Seconds())))
}
