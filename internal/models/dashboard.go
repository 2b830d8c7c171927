package models

import (
	"time"

	"github.com/google/uuid"
)

type AlertPriority string

const (
	AlertPriorityHigh   AlertPriority = "high"
	AlertPriorityMedium AlertPriority = "medium"
	AlertPriorityLow    AlertPriority = "low"
)

// StockAlert is derived on every read from an inventory item below its minimum.
type StockAlert struct {
	ID           uuid.UUID     `json:"id"`
	PartName     string        `json:"partName"`
	CurrentStock int           `json:"currentStock"`
	MinStock     int           `json:"minStock"`
	Supplier     string        `json:"supplier"`
	Priority     AlertPriority `json:"priority"`
}

type DashboardStats struct {
	OrdersInProgress  int     `json:"ordersInProgress"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
	ActiveClients     int     `json:"activeClients"`
	TodayAppointments int     `json:"todayAppointments"`
	RevenueGrowth     float64 `json:"revenueGrowth"`
	ClientsGrowth     float64 `json:"clientsGrowth"`
}

type RecentOrder struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	ClientName  string    `json:"client_name"`
	Vehicle     string    `json:"vehicle"`
	Service     string    `json:"service"`
	Status      string    `json:"status"`
	Value       float64   `json:"value"`
	Date        time.Time `json:"date"`
}
