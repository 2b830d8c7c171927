package handlers

import (
	"context"
	"net/http"

	"workshoppro/internal/common"
	"workshoppro/internal/logging"
	"workshoppro/internal/models"
	"workshoppro/internal/repositories"
	"workshoppro/internal/services"

	"github.com/labstack/echo/v4"
)

// serviceOrderStore routes writes through the service so numbering, defaults
// and status timestamps apply to the generic CRUD routes too.
type serviceOrderStore struct {
	repositories.ServiceOrderRepository
	svc services.ServiceOrderService
}

func (s serviceOrderStore) Create(ctx context.Context, order *models.ServiceOrder) error {
	return s.svc.Create(ctx, order)
}

func (s serviceOrderStore) Update(ctx context.Context, order *models.ServiceOrder) error {
	return s.svc.Update(ctx, order)
}

// NewServiceOrderStore adapts the repository and service to Store.
func NewServiceOrderStore(repo repositories.ServiceOrderRepository, svc services.ServiceOrderService) Store[models.ServiceOrder] {
	return serviceOrderStore{ServiceOrderRepository: repo, svc: svc}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ServiceOrderHandlers struct {
	svc    services.ServiceOrderService
	logger *logging.Logger
}

func NewServiceOrderHandlers(svc services.ServiceOrderService, logger *logging.Logger) *ServiceOrderHandlers {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ServiceOrderHandlers{svc: svc, logger: logger}
}

// UpdateStatus moves an order to a new status.
func (h *ServiceOrderHandlers) UpdateStatus(c echo.Context) error {
	id, err := common.ParseID(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req UpdateStatusRequest
	if ok, err := decode(c, &req); !ok {
		return err
	}

	order, err := h.svc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return respondError(c, h.logger, "Service order", err)
	}
	return c.JSON(http.StatusOK, order)
}
