package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AppointmentStatusScheduled  = "agendado"
	AppointmentStatusInProgress = "em_andamento"
	AppointmentStatusDone       = "concluido"
	AppointmentStatusCancelled  = "cancelado"
)

// Appointment dates are calendar dates (YYYY-MM-DD) and times are wall clock
// (HH:MM), kept as text so no timezone conversion happens on the way through.
type Appointment struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	ClientID           uuid.UUID  `json:"client_id" db:"client_id" validate:"required"`
	VehicleID          *uuid.UUID `json:"vehicle_id" db:"vehicle_id"`
	ServiceDescription string     `json:"service_description" db:"service_description" validate:"required"`
	AppointmentDate    string     `json:"appointment_date" db:"appointment_date" validate:"required,datetime=2006-01-02"`
	StartTime          string     `json:"start_time" db:"start_time" validate:"required,datetime=15:04"`
	EndTime            string     `json:"end_time" db:"end_time" validate:"required,datetime=15:04"`
	Status             string     `json:"status" db:"status" validate:"omitempty,oneof=agendado em_andamento concluido cancelado"`
	Priority           string     `json:"priority" db:"priority" validate:"omitempty,oneof=baixa normal alta urgente"`
	Notes              *string    `json:"notes" db:"notes"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}
