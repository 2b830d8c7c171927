package models

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ClientID     uuid.UUID `json:"client_id" db:"client_id" validate:"required"`
	Brand        string    `json:"brand" db:"brand" validate:"required,max=100"`
	Model        string    `json:"model" db:"model" validate:"required,max=100"`
	Year         *int      `json:"year" db:"year" validate:"omitempty,min=1900,max=2100"`
	LicensePlate *string   `json:"license_plate" db:"license_plate" validate:"omitempty,max=10"`
	Color        *string   `json:"color" db:"color"`
	Engine       *string   `json:"engine" db:"engine"`
	Mileage      *int      `json:"mileage" db:"mileage" validate:"omitempty,min=0"`
	Notes        *string   `json:"notes" db:"notes"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
