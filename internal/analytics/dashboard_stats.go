package analytics

import (
	"math"
	"time"

	"workshoppro/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthWindow holds the calendar boundaries the dashboard compares.
type MonthWindow struct {
	CurrentMonthStart time.Time
	LastMonthStart    time.Time
	// LastMonthEnd is midnight at the start of the previous month's last day.
	LastMonthEnd time.Time
}

// MonthWindows anchors the windows to now's calendar month in now's location.
func MonthWindows(now time.Time) MonthWindow {
	y, m, _ := now.Date()
	loc := now.Location()
	return MonthWindow{
		CurrentMonthStart: time.Date(y, m, 1, 0, 0, 0, 0, loc),
		LastMonthStart:    time.Date(y, m-1, 1, 0, 0, 0, 0, loc),
		LastMonthEnd:      time.Date(y, m, 0, 0, 0, 0, 0, loc),
	}
}

// SumAmounts adds the amounts with decimal arithmetic. Missing and non-finite
// amounts count as zero.
func SumAmounts(amounts []*float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		if a == nil || math.IsNaN(*a) || math.IsInf(*a, 0) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(*a))
	}
	return total.InexactFloat64()
}

// CountDistinctClients counts distinct non-nil ids.
func CountDistinctClients(ids []*uuid.UUID) int {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == nil {
			continue
		}
		seen[*id] = struct{}{}
	}
	return len(seen)
}

// Growth is the percentage change from previous to current. Without a
// positive baseline it is 0.
func Growth(current, previous float64) float64 {
	if previous <= 0 || math.IsNaN(previous) || math.IsInf(previous, 0) {
		return 0
	}
	if math.IsNaN(current) || math.IsInf(current, 0) {
		return 0
	}
	prev := decimal.NewFromFloat(previous)
	return decimal.NewFromFloat(current).Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// DashboardInput is everything read from storage for one snapshot.
type DashboardInput struct {
	OrdersInProgress   int
	MonthlyAmounts     []*float64
	LastMonthAmounts   []*float64
	AllClientIDs       []*uuid.UUID
	LastMonthClientIDs []*uuid.UUID
	TodayAppointments  int
}

// BuildDashboardStats derives the snapshot. activeClients is an all-time
// count while its growth baseline covers only the previous month.
func BuildDashboardStats(in DashboardInput) models.DashboardStats {
	monthlyRevenue := SumAmounts(in.MonthlyAmounts)
	lastMonthRevenue := SumAmounts(in.LastMonthAmounts)
	activeClients := CountDistinctClients(in.AllClientIDs)
	lastMonthClients := CountDistinctClients(in.LastMonthClientIDs)

	return models.DashboardStats{
		OrdersInProgress:  in.OrdersInProgress,
		MonthlyRevenue:    monthlyRevenue,
		ActiveClients:     activeClients,
		TodayAppointments: in.TodayAppointments,
		RevenueGrowth:     Growth(monthlyRevenue, lastMonthRevenue),
		ClientsGrowth:     Growth(float64(activeClients), float64(lastMonthClients)),
	}
}
