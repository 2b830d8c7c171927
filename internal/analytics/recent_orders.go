package analytics

import (
	"math"
	"slices"
	"strings"

	"workshoppro/internal/models"
)

const (
	UnknownVehicle = "Veículo não informado"
	UnknownClient  = "Cliente não informado"
	NoDescription  = "Sem descrição"
)

// ProjectRecentOrders flattens the limit newest rows, newest first. A
// non-positive limit falls back to the default.
func ProjectRecentOrders(rows []models.RecentOrderRow, limit int) []models.RecentOrder {
	if limit <= 0 {
		limit = models.DefaultRecentOrdersLimit
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b models.RecentOrderRow) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]models.RecentOrder, 0, len(sorted))
	for _, row := range sorted {
		out = append(out, models.RecentOrder{
			ID:          row.ID,
			OrderNumber: row.OrderNumber,
			ClientName:  valueOr(row.ClientName, UnknownClient),
			Vehicle:     vehicleLabel(row.VehicleBrand, row.VehicleModel),
			Service:     valueOr(row.Description, NoDescription),
			Status:      row.Status,
			Value:       amountOrZero(row.TotalAmount),
			Date:        row.CreatedAt,
		})
	}
	return out
}

func vehicleLabel(brand, model *string) string {
	label := strings.TrimSpace(valueOr(brand, "") + " " + valueOr(model, ""))
	if label == "" {
		return UnknownVehicle
	}
	return label
}

func amountOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}
