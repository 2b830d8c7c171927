package models

import (
	"time"

	"github.com/google/uuid"
)

const QuotationStatusPending = "pendente"

type Quotation struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	QuotationNumber    string    `json:"quotation_number" db:"quotation_number"`
	ClientID           uuid.UUID `json:"client_id" db:"client_id" validate:"required"`
	VehicleID          uuid.UUID `json:"vehicle_id" db:"vehicle_id" validate:"required"`
	ServiceDescription string    `json:"service_description" db:"service_description" validate:"required"`
	PartsDescription   *string   `json:"parts_description" db:"parts_description"`
	TotalAmount        float64   `json:"total_amount" db:"total_amount" validate:"min=0"`
	Status             string    `json:"status" db:"status" validate:"omitempty,oneof=pendente aprovada rejeitada expirada"`
	Supplier           *string   `json:"supplier" db:"supplier"`
	ValidUntil         *string   `json:"valid_until" db:"valid_until" validate:"omitempty,datetime=2006-01-02"`
	Notes              *string   `json:"notes" db:"notes"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
