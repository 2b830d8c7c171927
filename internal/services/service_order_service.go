package services

import (
	"context"
	"errors"
	"time"

	"workshoppro/internal/logging"
	"workshoppro/internal/models"
	"workshoppro/internal/repositories"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid service order status")

var validOrderStatuses = map[string]bool{
	models.OrderStatusQuote:         true,
	models.OrderStatusApproved:      true,
	models.OrderStatusInProgress:    true,
	models.OrderStatusAwaitingParts: true,
	models.OrderStatusCompleted:     true,
	models.OrderStatusDelivered:     true,
	models.OrderStatusCancelled:     true,
}

type ServiceOrderService interface {
	Create(ctx context.Context, order *models.ServiceOrder) error
	Update(ctx context.Context, order *models.ServiceOrder) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.ServiceOrder, error)
}

type serviceOrderService struct {
	repo   repositories.ServiceOrderRepository
	logger *logging.Logger
	now    func() time.Time
}

func NewServiceOrderService(repo repositories.ServiceOrderRepository, logger *logging.Logger, now func() time.Time) ServiceOrderService {
	if logger == nil {
		logger = logging.Nop()
	}
	if now == nil {
		now = time.Now
	}
	return &serviceOrderService{repo: repo, logger: logger, now: now}
}

func (s *serviceOrderService) Create(ctx context.Context, order *models.ServiceOrder) error {
	if order.Status == "" {
		order.Status = models.OrderStatusQuote
	}
	if order.Priority == nil {
		p := models.OrderPriorityNormal
		order.Priority = &p
	}
	fillTotal(order)
	ApplyStatusTimestamps(order, s.now())
	if err := s.repo.Create(ctx, order); err != nil {
		return err
	}
	s.logger.Info(ctx, "service_orders", "service order created", map[string]any{"order_number": order.OrderNumber})
	return nil
}

func (s *serviceOrderService) Update(ctx context.Context, order *models.ServiceOrder) error {
	existing, err := s.repo.GetByID(ctx, order.ID)
	if err != nil {
		return err
	}
	order.OrderNumber = existing.OrderNumber
	order.CreatedAt = existing.CreatedAt
	if order.Status == "" {
		order.Status = existing.Status
	}
	if order.StartedAt == nil {
		order.StartedAt = existing.StartedAt
	}
	if order.CompletedAt == nil {
		order.CompletedAt = existing.CompletedAt
	}
	fillTotal(order)
	ApplyStatusTimestamps(order, s.now())
	return s.repo.Update(ctx, order)
}

func (s *serviceOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.ServiceOrder, error) {
	if !validOrderStatuses[status] {
		return nil, ErrInvalidStatus
	}
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := order.Status
	order.Status = status
	ApplyStatusTimestamps(order, s.now())
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "service_orders", "service order status changed", map[string]any{
		"order_number": order.OrderNumber,
		"from":         previous,
		"to":           status,
	})
	return order, nil
}

// ApplyStatusTimestamps stamps started_at when work begins and completed_at
// when it is finished. Existing timestamps are kept.
func ApplyStatusTimestamps(order *models.ServiceOrder, now time.Time) {
	switch order.Status {
	case models.OrderStatusInProgress:
		if order.StartedAt == nil {
			order.StartedAt = &now
		}
	case models.OrderStatusCompleted, models.OrderStatusDelivered:
		if order.StartedAt == nil {
			order.StartedAt = &now
		}
		if order.CompletedAt == nil {
			order.CompletedAt = &now
		}
	}
}

// fillTotal derives total_amount from labor and parts when it was not given.
func fillTotal(order *models.ServiceOrder) {
	if order.TotalAmount != nil || (order.TotalLabor == nil && order.TotalParts == nil) {
		return
	}
	var total float64
	if order.TotalLabor != nil {
		total += *order.TotalLabor
	}
	if order.TotalParts != nil {
		total += *order.TotalParts
	}
	order.TotalAmount = &total
}
