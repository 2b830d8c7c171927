package handlers

import (
	"net/http"

	"workshoppro/internal/logging"
	"workshoppro/internal/services"

	"github.com/labstack/echo/v4"
)

type FinanceHandlers struct {
	svc    services.FinanceService
	logger *logging.Logger
}

func NewFinanceHandlers(svc services.FinanceService, logger *logging.Logger) *FinanceHandlers {
	if logger == nil {
		logger = logging.Nop()
	}
	return &FinanceHandlers{svc: svc, logger: logger}
}

// Summary handles GET /transactions/summary?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *FinanceHandlers) Summary(c echo.Context) error {
	summary, err := h.svc.Summary(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return respondError(c, h.logger, "Financial summary", err)
	}
	return c.JSON(http.StatusOK, summary)
}
