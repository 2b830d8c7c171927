package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationTypeInfo    = "info"
	NotificationTypeWarning = "warning"
	NotificationTypeError   = "error"
	NotificationTypeSuccess = "success"
)

type Notification struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	Title             string     `json:"title" db:"title" validate:"required,max=200"`
	Message           string     `json:"message" db:"message" validate:"required"`
	Type              string     `json:"type" db:"type" validate:"omitempty,oneof=info warning error success"`
	Priority          string     `json:"priority" db:"priority" validate:"omitempty,oneof=baixa normal alta"`
	IsRead            bool       `json:"is_read" db:"is_read"`
	RelatedEntityType *string    `json:"related_entity_type" db:"related_entity_type"`
	RelatedEntityID   *uuid.UUID `json:"related_entity_id" db:"related_entity_id"`
	ExpiresAt         *time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
}
