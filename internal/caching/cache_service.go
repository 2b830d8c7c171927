package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"workshoppro/internal/models"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "workshoppro:"

type CacheService interface {
	// Dashboard views
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
	SetDashboardStats(ctx context.Context, stats *models.DashboardStats, ttl time.Duration) error
	GetStockAlerts(ctx context.Context) ([]models.StockAlert, bool, error)
	SetStockAlerts(ctx context.Context, alerts []models.StockAlert, ttl time.Duration) error
	GetRecentOrders(ctx context.Context, limit int) ([]models.RecentOrder, bool, error)
	SetRecentOrders(ctx context.Context, limit int, orders []models.RecentOrder, ttl time.Duration) error

	// Workshop settings
	GetSettings(ctx context.Context) (*models.WorkshopSettings, error)
	SetSettings(ctx context.Context, settings *models.WorkshopSettings, ttl time.Duration) error
	DeleteSettings(ctx context.Context) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

// NewRedisClient accepts either host:port or a redis:// or rediss:// URL.
// A non-empty password or non-zero db overrides the one in the URL.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	opts := &redis.Options{Addr: addr}
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	}
	if password != "" {
		opts.Password = password
	}
	if db != 0 {
		opts.DB = db
	}
	return redis.NewClient(opts), nil
}

func NewRedisCacheService(client *redis.Client) CacheService {
	return &redisCacheService{client: client}
}

// getJSON returns false on a cache miss.
func (r *redisCacheService) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (r *redisCacheService) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+key, data, ttl).Err()
}

func (r *redisCacheService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	ok, err := r.getJSON(ctx, "dashboard:stats", &stats)
	if err != nil || !ok {
		return nil, err
	}
	return &stats, nil
}

func (r *redisCacheService) SetDashboardStats(ctx context.Context, stats *models.DashboardStats, ttl time.Duration) error {
	return r.setJSON(ctx, "dashboard:stats", stats, ttl)
}

func (r *redisCacheService) GetStockAlerts(ctx context.Context) ([]models.StockAlert, bool, error) {
	alerts := []models.StockAlert{}
	ok, err := r.getJSON(ctx, "dashboard:stock_alerts", &alerts)
	if err != nil || !ok {
		return nil, false, err
	}
	return alerts, true, nil
}

func (r *redisCacheService) SetStockAlerts(ctx context.Context, alerts []models.StockAlert, ttl time.Duration) error {
	return r.setJSON(ctx, "dashboard:stock_alerts", alerts, ttl)
}

func (r *redisCacheService) GetRecentOrders(ctx context.Context, limit int) ([]models.RecentOrder, bool, error) {
	orders := []models.RecentOrder{}
	ok, err := r.getJSON(ctx, fmt.Sprintf("dashboard:recent_orders:%d", limit), &orders)
	if err != nil || !ok {
		return nil, false, err
	}
	return orders, true, nil
}

func (r *redisCacheService) SetRecentOrders(ctx context.Context, limit int, orders []models.RecentOrder, ttl time.Duration) error {
	return r.setJSON(ctx, fmt.Sprintf("dashboard:recent_orders:%d", limit), orders, ttl)
}

func (r *redisCacheService) GetSettings(ctx context.Context) (*models.WorkshopSettings, error) {
	var settings models.WorkshopSettings
	ok, err := r.getJSON(ctx, "settings", &settings)
	if err != nil || !ok {
		return nil, err
	}
	return &settings, nil
}

func (r *redisCacheService) SetSettings(ctx context.Context, settings *models.WorkshopSettings, ttl time.Duration) error {
	return r.setJSON(ctx, "settings", settings, ttl)
}

func (r *redisCacheService) DeleteSettings(ctx context.Context) error {
	return r.client.Del(ctx, keyPrefix+"settings").Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
