package analytics

import "workshoppro/internal/models"

const (
	UnknownPartName     = "Peça desconhecida"
	UnknownSupplierName = "Fornecedor não informado"
)

// StockPercentage is current as a percentage of min. min must be positive.
func StockPercentage(current, min int) float64 {
	return float64(current) / float64(min) * 100
}

// PriorityForPercentage buckets a stock percentage, checking the tighter
// threshold first.
func PriorityForPercentage(pct float64) models.AlertPriority {
	switch {
	case pct <= 25:
		return models.AlertPriorityHigh
	case pct <= 50:
		return models.AlertPriorityMedium
	default:
		return models.AlertPriorityLow
	}
}

// DeriveStockAlerts returns one alert per row below its minimum stock, in
// input order. Rows with a zero minimum never alert.
func DeriveStockAlerts(rows []models.InventoryStockRow) []models.StockAlert {
	alerts := make([]models.StockAlert, 0, len(rows))
	for _, row := range rows {
		if row.MinStock <= 0 || row.CurrentStock >= row.MinStock {
			continue
		}
		alerts = append(alerts, models.StockAlert{
			ID:           row.ID,
			PartName:     valueOr(row.PartName, UnknownPartName),
			CurrentStock: row.CurrentStock,
			MinStock:     row.MinStock,
			Supplier:     valueOr(row.SupplierName, UnknownSupplierName),
			Priority:     PriorityForPercentage(StockPercentage(row.CurrentStock, row.MinStock)),
		})
	}
	return alerts
}

// valueOr treats nil and empty strings alike.
func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
