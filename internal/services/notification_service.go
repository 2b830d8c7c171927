package services

import (
	"context"
	"fmt"

	"workshoppro/internal/logging"
	"workshoppro/internal/models"
	"workshoppro/internal/repositories"

	"github.com/google/uuid"
)

const relatedInventory = "inventory"

// NotificationService manages the in-app notification feed.
type NotificationService interface {
	Notify(ctx context.Context, notification *models.Notification) error
	Unread(ctx context.Context, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// NotifyStockAlerts raises a warning for every high priority alert that
	// has no unread notification yet.
	NotifyStockAlerts(ctx context.Context, alerts []models.StockAlert) (int, error)
}

type notificationService struct {
	repo   repositories.NotificationRepository
	logger *logging.Logger
}

func NewNotificationService(repo repositories.NotificationRepository, logger *logging.Logger) NotificationService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &notificationService{repo: repo, logger: logger}
}

func (s *notificationService) Notify(ctx context.Context, n *models.Notification) error {
	if n.Type == "" {
		n.Type = models.NotificationTypeInfo
	}
	if n.Priority == "" {
		n.Priority = models.OrderPriorityNormal
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	s.logger.Debug(ctx, "notifications", "notification created", map[string]any{"id": n.ID.String(), "type": n.Type})
	return nil
}

func (s *notificationService) Unread(ctx context.Context, limit int) ([]*models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListUnread(ctx, limit)
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "notifications", "notifications marked as read", map[string]any{"count": n})
	return n, nil
}

func (s *notificationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *notificationService) NotifyStockAlerts(ctx context.Context, alerts []models.StockAlert) (int, error) {
	created := 0
	for _, alert := range alerts {
		if alert.Priority != models.AlertPriorityHigh {
			continue
		}
		pending, err := s.repo.HasUnreadFor(ctx, relatedInventory, alert.ID)
		if err != nil {
			return created, err
		}
		if pending {
			continue
		}
		entity := relatedInventory
		id := alert.ID
		n := &models.Notification{
			Title:             "Estoque crítico: " + alert.PartName,
			Message:           fmt.Sprintf("%s tem %d unidade(s) em estoque (mínimo %d). Fornecedor: %s.", alert.PartName, alert.CurrentStock, alert.MinStock, alert.Supplier),
			Type:              models.NotificationTypeWarning,
			Priority:          "alta",
			RelatedEntityType: &entity,
			RelatedEntityID:   &id,
		}
		if err := s.Notify(ctx, n); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
