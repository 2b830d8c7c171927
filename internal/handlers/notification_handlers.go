package handlers

import (
	"net/http"
	"strconv"

	"workshoppro/internal/common"
	"workshoppro/internal/logging"
	"workshoppro/internal/models"
	"workshoppro/internal/services"

	"github.com/labstack/echo/v4"
)

type NotificationHandlers struct {
	svc    services.NotificationService
	alerts DashboardService
	logger *logging.Logger
}

func NewNotificationHandlers(svc services.NotificationService, alerts DashboardService, logger *logging.Logger) *NotificationHandlers {
	if logger == nil {
		logger = logging.Nop()
	}
	return &NotificationHandlers{svc: svc, alerts: alerts, logger: logger}
}

func (h *NotificationHandlers) Register(g *echo.Group) {
	g.GET("/notifications", h.ListUnread)
	g.POST("/notifications", h.Create)
	g.POST("/notifications/read-all", h.MarkAllRead)
	g.POST("/notifications/stock-alerts", h.NotifyStockAlerts)
	g.PUT("/notifications/:id/read", h.MarkRead)
	g.DELETE("/notifications/:id", h.Delete)
}

func (h *NotificationHandlers) ListUnread(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return common.SendValidationError(c, "limit", "must be a positive integer")
		}
		limit = n
	}

	list, err := h.svc.Unread(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, h.logger, "Notifications", err)
	}
	if list == nil {
		list = []*models.Notification{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *NotificationHandlers) Create(c echo.Context) error {
	var n models.Notification
	if ok, err := decode(c, &n); !ok {
		return err
	}
	if err := h.svc.Notify(c.Request().Context(), &n); err != nil {
		return respondError(c, h.logger, "Notification", err)
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *NotificationHandlers) MarkRead(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	if err := h.svc.MarkRead(c.Request().Context(), id); err != nil {
		return respondError(c, h.logger, "Notification", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandlers) MarkAllRead(c echo.Context) error {
	n, err := h.svc.MarkAllRead(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, "Notifications", err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"updated": n})
}

func (h *NotificationHandlers) Delete(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, h.logger, "Notification", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// NotifyStockAlerts turns the current high priority stock alerts into
// notifications.
func (h *NotificationHandlers) NotifyStockAlerts(c echo.Context) error {
	ctx := c.Request().Context()
	alerts, err := h.alerts.StockAlerts(ctx)
	if err != nil {
		return respondError(c, h.logger, "stock alerts", err)
	}
	created, err := h.svc.NotifyStockAlerts(ctx, alerts)
	if err != nil {
		return respondError(c, h.logger, "Notifications", err)
	}
	return c.JSON(http.StatusOK, map[string]int{"created": created})
}
