package repositories

import (
	"context"
	"fmt"

	"workshoppro/internal/models"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]*models.Appointment, error)
	CountByDate(ctx context.Context, date string) (int, error)
}

type appointmentRepo struct {
	db Database
}

func NewAppointmentRepo(db Database) AppointmentRepository {
	return &appointmentRepo{db: db}
}

const appointmentColumns = `id, client_id, vehicle_id, service_description, appointment_date::text,
	to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), status, priority, notes, created_at, updated_at`

func scanAppointment(row scanner) (*models.Appointment, error) {
	a := &models.Appointment{}
	err := row.Scan(&a.ID, &a.ClientID, &a.VehicleID, &a.ServiceDescription, &a.AppointmentDate,
		&a.StartTime, &a.EndTime, &a.Status, &a.Priority, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *appointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	if appointment.Status == "" {
		appointment.Status = models.AppointmentStatusScheduled
	}
	if appointment.Priority == "" {
		appointment.Priority = models.OrderPriorityNormal
	}
	query := `
		INSERT INTO appointments (id, client_id, vehicle_id, service_description, appointment_date, start_time, end_time,
			status, priority, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::date, $6::time, $7::time, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, appointment.ID, appointment.ClientID, appointment.VehicleID, appointment.ServiceDescription,
		appointment.AppointmentDate, appointment.StartTime, appointment.EndTime, appointment.Status, appointment.Priority, appointment.Notes).
		Scan(&appointment.CreatedAt, &appointment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	appointment, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound("get appointment", err)
	}
	return appointment, nil
}

func (r *appointmentRepo) Update(ctx context.Context, appointment *models.Appointment) error {
	query := `
		UPDATE appointments
		SET client_id = $1, vehicle_id = $2, service_description = $3, appointment_date = $4::date, start_time = $5::time,
			end_time = $6::time, status = $7, priority = $8, notes = $9, updated_at = NOW()
		WHERE id = $10
	`
	return execOne(ctx, r.db, "update appointment", query, appointment.ClientID, appointment.VehicleID, appointment.ServiceDescription,
		appointment.AppointmentDate, appointment.StartTime, appointment.EndTime, appointment.Status, appointment.Priority,
		appointment.Notes, appointment.ID)
}

func (r *appointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, "delete appointment", `DELETE FROM appointments WHERE id = $1`, id)
}

func (r *appointmentRepo) List(ctx context.Context, limit, offset int) ([]*models.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY appointment_date ASC, start_time ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	appointments, err := collect(rows, scanAppointment)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

// ListByDate returns the appointments of one calendar day (YYYY-MM-DD).
func (r *appointmentRepo) ListByDate(ctx context.Context, date string) ([]*models.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE appointment_date = $1::date ORDER BY start_time ASC`
	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list appointments by date: %w", err)
	}
	appointments, err := collect(rows, scanAppointment)
	if err != nil {
		return nil, fmt.Errorf("list appointments by date: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepo) CountByDate(ctx context.Context, date string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM appointments WHERE appointment_date = $1::date`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count appointments by date: %w", err)
	}
	return count, nil
}
