package models

import (
	"time"

	"github.com/google/uuid"
)

type Supplier struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name" validate:"required,max=200"`
	ContactPerson *string   `json:"contact_person" db:"contact_person"`
	Email         *string   `json:"email" db:"email" validate:"omitempty,email"`
	Phone         *string   `json:"phone" db:"phone"`
	Address       *string   `json:"address" db:"address"`
	Notes         *string   `json:"notes" db:"notes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

type Part struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name" validate:"required,max=200"`
	Category    *string    `json:"category" db:"category"`
	PartNumber  *string    `json:"part_number" db:"part_number"`
	Description *string    `json:"description" db:"description"`
	UnitPrice   *float64   `json:"unit_price" db:"unit_price" validate:"omitempty,min=0"`
	SupplierID  *uuid.UUID `json:"supplier_id" db:"supplier_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
