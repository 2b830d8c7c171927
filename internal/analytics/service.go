package analytics

import (
	"context"
	"fmt"
	"time"

	"workshoppro/internal/caching"
	"workshoppro/internal/logging"
	"workshoppro/internal/metrics"
	"workshoppro/internal/models"

	"github.com/google/uuid"
)

const (
	ViewDashboardStats = "dashboard_stats"
	ViewStockAlerts    = "stock_alerts"
	ViewRecentOrders   = "recent_orders"

	logModule = "analytics"
)

type StockSource interface {
	ListStockRows(ctx context.Context) ([]models.InventoryStockRow, error)
}

type OrderSource interface {
	CountByStatus(ctx context.Context, status string) (int, error)
	ListCompletedAmounts(ctx context.Context, from time.Time, to *time.Time) ([]*float64, error)
	ListClientIDs(ctx context.Context, from, to *time.Time) ([]*uuid.UUID, error)
	ListRecent(ctx context.Context, limit int) ([]models.RecentOrderRow, error)
}

type AppointmentSource interface {
	CountByDate(ctx context.Context, date string) (int, error)
}

type ServiceParams struct {
	Stock        StockSource
	Orders       OrderSource
	Appointments AppointmentSource
	// Cache may be nil, in which case every call derives fresh.
	Cache   caching.CacheService
	Logger  *logging.Logger
	Metrics *metrics.AnalyticsMetrics

	StatsTTL        time.Duration
	RecentOrdersTTL time.Duration
	StockAlertsTTL  time.Duration

	// Now supplies the dashboard clock, already in the workshop's timezone.
	Now func() time.Time
}

// AnalyticsService reads rows for the dashboard views, derives them and
// caches the result for the view's refresh interval.
type AnalyticsService struct {
	stock        StockSource
	orders       OrderSource
	appointments AppointmentSource
	cache        caching.CacheService
	logger       *logging.Logger
	metrics      *metrics.AnalyticsMetrics

	statsTTL        time.Duration
	recentOrdersTTL time.Duration
	stockAlertsTTL  time.Duration
	now             func() time.Time
}

func NewAnalyticsService(p ServiceParams) *AnalyticsService {
	if p.Now == nil {
		p.Now = time.Now
	}
	if p.Logger == nil {
		p.Logger = logging.Nop()
	}
	return &AnalyticsService{
		stock:           p.Stock,
		orders:          p.Orders,
		appointments:    p.Appointments,
		cache:           p.Cache,
		logger:          p.Logger,
		metrics:         p.Metrics,
		statsTTL:        p.StatsTTL,
		recentOrdersTTL: p.RecentOrdersTTL,
		stockAlertsTTL:  p.StockAlertsTTL,
		now:             p.Now,
	}
}

// StockAlerts lists inventory items below their minimum stock.
func (s *AnalyticsService) StockAlerts(ctx context.Context) ([]models.StockAlert, error) {
	if s.cache != nil {
		alerts, ok, err := s.cache.GetStockAlerts(ctx)
		if s.recordCache(ctx, ViewStockAlerts, ok, err) {
			return alerts, nil
		}
	}

	started := time.Now()
	rows, err := s.stock.ListStockRows(ctx)
	if err != nil {
		return nil, s.fail(ctx, ViewStockAlerts, err)
	}
	alerts := DeriveStockAlerts(rows)
	s.metrics.ObserveDerivation(ViewStockAlerts, time.Since(started))

	if len(alerts) > 0 {
		s.logger.Info(ctx, logModule, "stock alerts derived", map[string]any{"count": len(alerts)})
	}
	if s.cache != nil {
		if err := s.cache.SetStockAlerts(ctx, alerts, s.stockAlertsTTL); err != nil {
			s.logger.Warn(ctx, logModule, "failed to cache stock alerts", map[string]any{"error": err.Error()})
		}
	}
	return alerts, nil
}

// DashboardStats computes the dashboard snapshot. Any failed read aborts it.
func (s *AnalyticsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if s.cache != nil {
		stats, err := s.cache.GetDashboardStats(ctx)
		if s.recordCache(ctx, ViewDashboardStats, stats != nil, err) {
			return stats, nil
		}
	}

	started := time.Now()
	in, err := s.readDashboardInput(ctx)
	if err != nil {
		return nil, s.fail(ctx, ViewDashboardStats, err)
	}
	stats := BuildDashboardStats(in)
	s.metrics.ObserveDerivation(ViewDashboardStats, time.Since(started))

	if s.cache != nil {
		if err := s.cache.SetDashboardStats(ctx, &stats, s.statsTTL); err != nil {
			s.logger.Warn(ctx, logModule, "failed to cache dashboard stats", map[string]any{"error": err.Error()})
		}
	}
	return &stats, nil
}

func (s *AnalyticsService) readDashboardInput(ctx context.Context) (DashboardInput, error) {
	now := s.now()
	w := MonthWindows(now)
	var in DashboardInput
	var err error

	if in.OrdersInProgress, err = s.orders.CountByStatus(ctx, models.OrderStatusInProgress); err != nil {
		return in, fmt.Errorf("orders in progress: %w", err)
	}
	if in.MonthlyAmounts, err = s.orders.ListCompletedAmounts(ctx, w.CurrentMonthStart, nil); err != nil {
		return in, fmt.Errorf("monthly revenue: %w", err)
	}
	if in.LastMonthAmounts, err = s.orders.ListCompletedAmounts(ctx, w.LastMonthStart, &w.LastMonthEnd); err != nil {
		return in, fmt.Errorf("last month revenue: %w", err)
	}
	if in.AllClientIDs, err = s.orders.ListClientIDs(ctx, nil, nil); err != nil {
		return in, fmt.Errorf("active clients: %w", err)
	}
	if in.LastMonthClientIDs, err = s.orders.ListClientIDs(ctx, &w.LastMonthStart, &w.LastMonthEnd); err != nil {
		return in, fmt.Errorf("last month clients: %w", err)
	}
	if in.TodayAppointments, err = s.appointments.CountByDate(ctx, now.Format(time.DateOnly)); err != nil {
		return in, fmt.Errorf("today appointments: %w", err)
	}
	return in, nil
}

// RecentOrders returns the limit newest service orders, newest first.
func (s *AnalyticsService) RecentOrders(ctx context.Context, limit int) ([]models.RecentOrder, error) {
	if limit <= 0 {
		limit = models.DefaultRecentOrdersLimit
	}
	if s.cache != nil {
		orders, ok, err := s.cache.GetRecentOrders(ctx, limit)
		if s.recordCache(ctx, ViewRecentOrders, ok, err) {
			return orders, nil
		}
	}

	started := time.Now()
	rows, err := s.orders.ListRecent(ctx, limit)
	if err != nil {
		return nil, s.fail(ctx, ViewRecentOrders, err)
	}
	orders := ProjectRecentOrders(rows, limit)
	s.metrics.ObserveDerivation(ViewRecentOrders, time.Since(started))

	if s.cache != nil {
		if err := s.cache.SetRecentOrders(ctx, limit, orders, s.recentOrdersTTL); err != nil {
			s.logger.Warn(ctx, logModule, "failed to cache recent orders", map[string]any{"error": err.Error()})
		}
	}
	return orders, nil
}

// recordCache reports whether a cached value can be served. Cache errors are
// logged and treated as a miss.
func (s *AnalyticsService) recordCache(ctx context.Context, view string, hit bool, err error) bool {
	switch {
	case err != nil:
		s.metrics.IncCache(view, metrics.CacheError)
		s.logger.Warn(ctx, logModule, "cache read failed", map[string]any{"view": view, "error": err.Error()})
		return false
	case hit:
		s.metrics.IncCache(view, metrics.CacheHit)
		return true
	default:
		s.metrics.IncCache(view, metrics.CacheMiss)
		return false
	}
}

func (s *AnalyticsService) fail(ctx context.Context, view string, err error) error {
	s.metrics.IncFailure(view)
	s.logger.Error(ctx, logModule, "failed to derive "+view, err, nil)
	return fmt.Errorf("%s: %w", view, err)
}
