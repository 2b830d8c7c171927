package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultWorkshopName   = "WorkshopPro"
	DefaultTheme          = "light"
	DefaultPrimaryColor   = "#2563eb"
	DefaultSecondaryColor = "#f97316"
)

type WorkshopSettings struct {
	ID             uuid.UUID `json:"id" db:"id"`
	WorkshopName   string    `json:"workshop_name" db:"workshop_name" validate:"required,max=100"`
	Phone          *string   `json:"phone" db:"phone"`
	WhatsApp       *string   `json:"whatsapp" db:"whatsapp"`
	Email          *string   `json:"email" db:"email" validate:"omitempty,email"`
	Address        *string   `json:"address" db:"address"`
	Theme          string    `json:"theme" db:"theme" validate:"required,oneof=light dark"`
	PrimaryColor   string    `json:"primary_color" db:"primary_color" validate:"required,hexcolor"`
	SecondaryColor string    `json:"secondary_color" db:"secondary_color" validate:"required,hexcolor"`
	LogoURL        *string   `json:"logo_url" db:"logo_url"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultWorkshopSettings is what a workshop that never saved its settings sees.
func DefaultWorkshopSettings() *WorkshopSettings {
	return &WorkshopSettings{
		WorkshopName:   DefaultWorkshopName,
		Theme:          DefaultTheme,
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
	}
}
