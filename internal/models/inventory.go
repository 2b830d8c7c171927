package models

import (
	"time"

	"github.com/google/uuid"
)

type InventoryItem struct {
	ID           uuid.UUID `json:"id" db:"id"`
	PartID       uuid.UUID `json:"part_id" db:"part_id" validate:"required"`
	CurrentStock int       `json:"current_stock" db:"current_stock" validate:"min=0"`
	MinStock     int       `json:"min_stock" db:"min_stock" validate:"min=0"`
	MaxStock     *int      `json:"max_stock" db:"max_stock" validate:"omitempty,min=0"`
	Location     *string   `json:"location" db:"location"`
	LastUpdated  time.Time `json:"last_updated" db:"last_updated"`
}

// InventoryStockRow is an inventory item joined with its part and the part's
// supplier. The joined names are nil when the relation has no value.
type InventoryStockRow struct {
	ID           uuid.UUID `db:"id"`
	CurrentStock int       `db:"current_stock"`
	MinStock     int       `db:"min_stock"`
	PartName     *string   `db:"part_name"`
	SupplierName *string   `db:"supplier_name"`
}
