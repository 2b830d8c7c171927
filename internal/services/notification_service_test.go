package services

import (
	"context"
	"errors"
	"testing"

	"workshoppro/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListUnread(ctx context.Context, limit int) ([]*models.Notification, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) HasUnreadFor(ctx context.Context, entityType string, entityID uuid.UUID) (bool, error) {
	args := m.Called(ctx, entityType, entityID)
	return args.Bool(0), args.Error(1)
}

func TestNotificationService_NotifyDefaults(t *testing.T) {
	repo := new(MockNotificationRepository)
	ctx := context.Background()
	n := &models.Notification{Title: "OS concluída", Message: "OS000001 pronta para entrega"}
	repo.On("Create", ctx, n).Return(nil).Once()

	err := NewNotificationService(repo, nil).Notify(ctx, n)

	require.NoError(t, err)
	assert.Equal(t, models.NotificationTypeInfo, n.Type)
	assert.Equal(t, "normal", n.Priority)
	repo.AssertExpectations(t)
}

func TestNotificationService_UnreadDefaultLimit(t *testing.T) {
	repo := new(MockNotificationRepository)
	ctx := context.Background()
	repo.On("ListUnread", ctx, 50).Return([]*models.Notification{}, nil).Once()

	list, err := NewNotificationService(repo, nil).Unread(ctx, 0)

	require.NoError(t, err)
	assert.Empty(t, list)
	repo.AssertExpectations(t)
}

func TestNotificationService_NotifyStockAlerts(t *testing.T) {
	repo := new(MockNotificationRepository)
	ctx := context.Background()
	critical := models.StockAlert{ID: uuid.New(), PartName: "Filtro de óleo", CurrentStock: 1, MinStock: 10, Supplier: "Auto Peças", Priority: models.AlertPriorityHigh}
	alerts := []models.StockAlert{
		critical,
		{ID: uuid.New(), PartName: "Pastilha", CurrentStock: 4, MinStock: 10, Priority: models.AlertPriorityMedium},
	}
	repo.On("HasUnreadFor", ctx, "inventory", critical.ID).Return(false, nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
		return n.Type == models.NotificationTypeWarning && *n.RelatedEntityID == critical.ID
	})).Return(nil).Once()

	created, err := NewNotificationService(repo, nil).NotifyStockAlerts(ctx, alerts)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	repo.AssertExpectations(t)
}

func TestNotificationService_NotifyStockAlertsStopsOnError(t *testing.T) {
	repo := new(MockNotificationRepository)
	ctx := context.Background()
	alerts := []models.StockAlert{
		{ID: uuid.New(), Priority: models.AlertPriorityHigh},
		{ID: uuid.New(), Priority: models.AlertPriorityHigh},
	}
	repo.On("HasUnreadFor", ctx, "inventory", mock.Anything).Return(false, nil).Once()
	repo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

	created, err := NewNotificationService(repo, nil).NotifyStockAlerts(ctx, alerts)

	assert.Error(t, err)
	assert.Equal(t, 0, created)
}

func TestNotificationService_NotifyStockAlertsSkipsPending(t *testing.T) {
	repo := new(MockNotificationRepository)
	ctx := context.Background()
	pending := models.StockAlert{ID: uuid.New(), PartName: "Correia", Priority: models.AlertPriorityHigh}
	fresh := models.StockAlert{ID: uuid.New(), PartName: "Vela", Priority: models.AlertPriorityHigh}
	repo.On("HasUnreadFor", ctx, "inventory", pending.ID).Return(true, nil).Once()
	repo.On("HasUnreadFor", ctx, "inventory", fresh.ID).Return(false, nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
		return *n.RelatedEntityID == fresh.ID
	})).Return(nil).Once()

	created, err := NewNotificationService(repo, nil).NotifyStockAlerts(ctx, []models.StockAlert{pending, fresh})

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	repo.AssertExpectations(t)
}
