package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"workshoppro/internal/analytics"
	"workshoppro/internal/common"
	"workshoppro/internal/logging"
	"workshoppro/internal/models"
	"workshoppro/internal/reports"

	"github.com/labstack/echo/v4"
)

const reportRowLimit = 1000

type ReportSources struct {
	Clients interface {
		List(ctx context.Context, limit, offset int) ([]*models.Client, error)
	}
	Orders interface {
		ListRecent(ctx context.Context, limit int) ([]models.RecentOrderRow, error)
	}
	Inventory interface {
		ListStockRows(ctx context.Context) ([]models.InventoryStockRow, error)
	}
	Alerts       DashboardService
	Transactions interface {
		Transactions(ctx context.Context, from, to string) ([]*models.Transaction, error)
	}
}

type ReportHandlers struct {
	src    ReportSources
	logger *logging.Logger
	now    func() time.Time
}

func NewReportHandlers(src ReportSources, logger *logging.Logger, now func() time.Time) *ReportHandlers {
	if logger == nil {
		logger = logging.Nop()
	}
	if now == nil {
		now = time.Now
	}
	return &ReportHandlers{src: src, logger: logger, now: now}
}

var errUnknownReport = errors.New("unknown report")

// Export handles GET /reports/:report?format=csv|xlsx|pdf.
func (h *ReportHandlers) Export(c echo.Context) error {
	format, err := reports.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return common.SendValidationError(c, "format", "must be one of: csv xlsx pdf")
	}

	name := c.Param("report")
	ctx := c.Request().Context()
	var table *reports.Table
	err = h.logger.WithOperation(ctx, "reports", "export "+name, func(ctx context.Context) error {
		var buildErr error
		table, buildErr = h.build(ctx, name, c.QueryParam("from"), c.QueryParam("to"))
		return buildErr
	})
	switch {
	case errors.Is(err, errUnknownReport):
		return common.SendValidationError(c, "report", "must be one of: clients service-orders inventory stock-alerts transactions")
	case err != nil:
		return respondError(c, h.logger, "Report", err)
	}

	now := h.now()
	data, err := reports.Render(format, table, now)
	if err != nil {
		return respondError(c, h.logger, "Report", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, format.FileName(name, now)))
	return c.Blob(http.StatusOK, format.ContentType(), data)
}

func (h *ReportHandlers) build(ctx context.Context, name, from, to string) (*reports.Table, error) {
	switch name {
	case "clients":
		clients, err := h.src.Clients.List(ctx, reportRowLimit, 0)
		if err != nil {
			return nil, err
		}
		return reports.ClientsTable(clients), nil
	case "service-orders":
		rows, err := h.src.Orders.ListRecent(ctx, reportRowLimit)
		if err != nil {
			return nil, err
		}
		return reports.ServiceOrdersTable(analytics.ProjectRecentOrders(rows, reportRowLimit)), nil
	case "inventory":
		rows, err := h.src.Inventory.ListStockRows(ctx)
		if err != nil {
			return nil, err
		}
		return reports.InventoryTable(rows), nil
	case "stock-alerts":
		alerts, err := h.src.Alerts.StockAlerts(ctx)
		if err != nil {
			return nil, err
		}
		return reports.StockAlertsTable(alerts), nil
	case "transactions":
		txs, err := h.src.Transactions.Transactions(ctx, from, to)
		if err != nil {
			return nil, err
		}
		return reports.TransactionsTable(txs), nil
	}
	return nil, errUnknownReport
}
