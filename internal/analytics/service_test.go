package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"workshoppro/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MockStockSource struct{ mock.Mock }

func (m *MockStockSource) ListStockRows(ctx context.Context) ([]models.InventoryStockRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.InventoryStockRow)
	return rows, args.Error(1)
}

type MockOrderSource struct{ mock.Mock }

func (m *MockOrderSource) CountByStatus(ctx context.Context, status string) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderSource) ListCompletedAmounts(ctx context.Context, from time.Time, to *time.Time) ([]*float64, error) {
	args := m.Called(ctx, from, to)
	amounts, _ := args.Get(0).([]*float64)
	return amounts, args.Error(1)
}

func (m *MockOrderSource) ListClientIDs(ctx context.Context, from, to *time.Time) ([]*uuid.UUID, error) {
	args := m.Called(ctx, from, to)
	ids, _ := args.Get(0).([]*uuid.UUID)
	return ids, args.Error(1)
}

func (m *MockOrderSource) ListRecent(ctx context.Context, limit int) ([]models.RecentOrderRow, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]models.RecentOrderRow)
	return rows, args.Error(1)
}

type MockAppointmentSource struct{ mock.Mock }

func (m *MockAppointmentSource) CountByDate(ctx context.Context, date string) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

type MockCache struct{ mock.Mock }

func (m *MockCache) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*models.DashboardStats)
	return stats, args.Error(1)
}

func (m *MockCache) SetDashboardStats(ctx context.Context, stats *models.DashboardStats, ttl time.Duration) error {
	return m.Called(ctx, stats, ttl).Error(0)
}

func (m *MockCache) GetStockAlerts(ctx context.Context) ([]models.StockAlert, bool, error) {
	args := m.Called(ctx)
	alerts, _ := args.Get(0).([]models.StockAlert)
	return alerts, args.Bool(1), args.Error(2)
}

func (m *MockCache) SetStockAlerts(ctx context.Context, alerts []models.StockAlert, ttl time.Duration) error {
	return m.Called(ctx, alerts, ttl).Error(0)
}

func (m *MockCache) GetRecentOrders(ctx context.Context, limit int) ([]models.RecentOrder, bool, error) {
	args := m.Called(ctx, limit)
	orders, _ := args.Get(0).([]models.RecentOrder)
	return orders, args.Bool(1), args.Error(2)
}

func (m *MockCache) SetRecentOrders(ctx context.Context, limit int, orders []models.RecentOrder, ttl time.Duration) error {
	return m.Called(ctx, limit, orders, ttl).Error(0)
}

func (m *MockCache) GetSettings(ctx context.Context) (*models.WorkshopSettings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*models.WorkshopSettings)
	return s, args.Error(1)
}

func (m *MockCache) SetSettings(ctx context.Context, s *models.WorkshopSettings, ttl time.Duration) error {
	return m.Called(ctx, s, ttl).Error(0)
}

func (m *MockCache) DeleteSettings(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type AnalyticsServiceTestSuite struct {
	suite.Suite
	stock        *MockStockSource
	orders       *MockOrderSource
	appointments *MockAppointmentSource
	cache        *MockCache
	service      *AnalyticsService
	now          time.Time
	ctx          context.Context
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.stock = new(MockStockSource)
	suite.orders = new(MockOrderSource)
	suite.appointments = new(MockAppointmentSource)
	suite.cache = new(MockCache)
	suite.now = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	suite.ctx = context.Background()
	suite.service = NewAnalyticsService(ServiceParams{
		Stock:           suite.stock,
		Orders:          suite.orders,
		Appointments:    suite.appointments,
		Cache:           suite.cache,
		StatsTTL:        30 * time.Second,
		RecentOrdersTTL: 60 * time.Second,
		StockAlertsTTL:  120 * time.Second,
		Now:             func() time.Time { return suite.now },
	})
}

func (suite *AnalyticsServiceTestSuite) TearDownTest() {
	suite.stock.AssertExpectations(suite.T())
	suite.orders.AssertExpectations(suite.T())
	suite.appointments.AssertExpectations(suite.T())
	suite.cache.AssertExpectations(suite.T())
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (suite *AnalyticsServiceTestSuite) TestDashboardStats_ComputesAndCaches() {
	w := MonthWindows(suite.now)
	a, b := uuid.New(), uuid.New()

	suite.cache.On("GetDashboardStats", suite.ctx).Return(nil, nil)
	suite.orders.On("CountByStatus", suite.ctx, "em_andamento").Return(2, nil)
	suite.orders.On("ListCompletedAmounts", suite.ctx, w.CurrentMonthStart, (*time.Time)(nil)).Return([]*float64{amount(500)}, nil)
	suite.orders.On("ListCompletedAmounts", suite.ctx, w.LastMonthStart, &w.LastMonthEnd).Return([]*float64{}, nil)
	suite.orders.On("ListClientIDs", suite.ctx, (*time.Time)(nil), (*time.Time)(nil)).Return([]*uuid.UUID{&a, &b, &a}, nil)
	suite.orders.On("ListClientIDs", suite.ctx, &w.LastMonthStart, &w.LastMonthEnd).Return([]*uuid.UUID{&a}, nil)
	suite.appointments.On("CountByDate", suite.ctx, "2025-03-15").Return(3, nil)
	suite.cache.On("SetDashboardStats", suite.ctx, mock.AnythingOfType("*models.DashboardStats"), 30*time.Second).Return(nil)

	stats, err := suite.service.DashboardStats(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, stats.OrdersInProgress)
	assert.Equal(suite.T(), 500.0, stats.MonthlyRevenue)
	assert.Equal(suite.T(), 0.0, stats.RevenueGrowth)
	assert.Equal(suite.T(), 2, stats.ActiveClients)
	assert.Equal(suite.T(), 100.0, stats.ClientsGrowth)
	assert.Equal(suite.T(), 3, stats.TodayAppointments)
}

func (suite *AnalyticsServiceTestSuite) TestDashboardStats_ServesCacheHit() {
	cached := &models.DashboardStats{OrdersInProgress: 9}
	suite.cache.On("GetDashboardStats", suite.ctx).Return(cached, nil)

	stats, err := suite.service.DashboardStats(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Same(suite.T(), cached, stats)
}

func (suite *AnalyticsServiceTestSuite) TestDashboardStats_ReadFailureAborts() {
	w := MonthWindows(suite.now)
	boom := errors.New("connection refused")

	suite.cache.On("GetDashboardStats", suite.ctx).Return(nil, nil)
	suite.orders.On("CountByStatus", suite.ctx, "em_andamento").Return(1, nil)
	suite.orders.On("ListCompletedAmounts", suite.ctx, w.CurrentMonthStart, (*time.Time)(nil)).Return(nil, boom)

	stats, err := suite.service.DashboardStats(suite.ctx)
	assert.Nil(suite.T(), stats)
	assert.ErrorIs(suite.T(), err, boom)
	suite.cache.AssertNotCalled(suite.T(), "SetDashboardStats", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnalyticsServiceTestSuite) TestStockAlerts_CacheErrorFallsThrough() {
	rows := []models.InventoryStockRow{{ID: uuid.New(), CurrentStock: 2, MinStock: 10}}

	suite.cache.On("GetStockAlerts", suite.ctx).Return(nil, false, errors.New("redis down"))
	suite.stock.On("ListStockRows", suite.ctx).Return(rows, nil)
	suite.cache.On("SetStockAlerts", suite.ctx, mock.Anything, 120*time.Second).Return(errors.New("redis down"))

	alerts, err := suite.service.StockAlerts(suite.ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), alerts, 1)
	assert.Equal(suite.T(), models.AlertPriorityHigh, alerts[0].Priority)
}

func (suite *AnalyticsServiceTestSuite) TestStockAlerts_SourceErrorPropagates() {
	boom := errors.New("query failed")
	suite.cache.On("GetStockAlerts", suite.ctx).Return(nil, false, nil)
	suite.stock.On("ListStockRows", suite.ctx).Return(nil, boom)

	_, err := suite.service.StockAlerts(suite.ctx)
	assert.ErrorIs(suite.T(), err, boom)
}

func (suite *AnalyticsServiceTestSuite) TestRecentOrders_DefaultLimit() {
	rows := []models.RecentOrderRow{{ID: uuid.New(), OrderNumber: "OS-000001", CreatedAt: suite.now}}

	suite.cache.On("GetRecentOrders", suite.ctx, 5).Return(nil, false, nil)
	suite.orders.On("ListRecent", suite.ctx, 5).Return(rows, nil)
	suite.cache.On("SetRecentOrders", suite.ctx, 5, mock.Anything, 60*time.Second).Return(nil)

	orders, err := suite.service.RecentOrders(suite.ctx, 0)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 1)
	assert.Equal(suite.T(), UnknownVehicle, orders[0].Vehicle)
}

func TestAnalyticsService_WithoutCache(t *testing.T) {
	stock := new(MockStockSource)
	stock.On("ListStockRows", mock.Anything).Return([]models.InventoryStockRow{}, nil).Twice()

	svc := NewAnalyticsService(ServiceParams{Stock: stock})
	for i := 0; i < 2; i++ {
		alerts, err := svc.StockAlerts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, alerts)
	}
	stock.AssertExpectations(t)
}
