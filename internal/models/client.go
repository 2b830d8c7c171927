package models

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required,max=200"`
	Email     *string   `json:"email" db:"email" validate:"omitempty,email"`
	Phone     *string   `json:"phone" db:"phone" validate:"omitempty,max=30"`
	Address   *string   `json:"address" db:"address"`
	Document  *string   `json:"document" db:"document" validate:"omitempty,max=30"` // CPF or CNPJ
	Notes     *string   `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
