package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusQuote         = "orcamento"
	OrderStatusApproved      = "aprovado"
	OrderStatusInProgress    = "em_andamento"
	OrderStatusAwaitingParts = "aguardando_pecas"
	OrderStatusCompleted     = "concluida"
	OrderStatusDelivered     = "entregue"
	OrderStatusCancelled     = "cancelada"
	OrderPriorityNormal      = "normal"
	DefaultRecentOrdersLimit = 5
)

type ServiceOrder struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	OrderNumber         string     `json:"order_number" db:"order_number"`
	ClientID            uuid.UUID  `json:"client_id" db:"client_id" validate:"required"`
	VehicleID           uuid.UUID  `json:"vehicle_id" db:"vehicle_id" validate:"required"`
	Description         string     `json:"description" db:"description" validate:"required"`
	Diagnosis           *string    `json:"diagnosis" db:"diagnosis"`
	Status              string     `json:"status" db:"status" validate:"omitempty,oneof=orcamento aprovado em_andamento aguardando_pecas concluida entregue cancelada"`
	Priority            *string    `json:"priority" db:"priority" validate:"omitempty,oneof=baixa normal alta urgente"`
	TotalLabor          *float64   `json:"total_labor" db:"total_labor" validate:"omitempty,min=0"`
	TotalParts          *float64   `json:"total_parts" db:"total_parts" validate:"omitempty,min=0"`
	TotalAmount         *float64   `json:"total_amount" db:"total_amount" validate:"omitempty,min=0"`
	StartedAt           *time.Time `json:"started_at" db:"started_at"`
	CompletedAt         *time.Time `json:"completed_at" db:"completed_at"`
	EstimatedCompletion *time.Time `json:"estimated_completion" db:"estimated_completion"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// RecentOrderRow is a service order joined with its client and vehicle. The
// joined columns are nil when the relation or the value is missing.
type RecentOrderRow struct {
	ID           uuid.UUID `db:"id"`
	OrderNumber  string    `db:"order_number"`
	Description  *string   `db:"description"`
	Status       string    `db:"status"`
	TotalAmount  *float64  `db:"total_amount"`
	CreatedAt    time.Time `db:"created_at"`
	ClientName   *string   `db:"client_name"`
	VehicleBrand *string   `db:"vehicle_brand"`
	VehicleModel *string   `db:"vehicle_model"`
}
