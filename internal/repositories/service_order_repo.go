package repositories

import (
	"context"
	"fmt"
	"time"

	"workshoppro/internal/models"

	"github.com/google/uuid"
)

type ServiceOrderRepository interface {
	Create(ctx context.Context, order *models.ServiceOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceOrder, error)
	Update(ctx context.Context, order *models.ServiceOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.ServiceOrder, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	ListCompletedAmounts(ctx context.Context, from time.Time, to *time.Time) ([]*float64, error)
	ListClientIDs(ctx context.Context, from, to *time.Time) ([]*uuid.UUID, error)
	ListRecent(ctx context.Context, limit int) ([]models.RecentOrderRow, error)
}

type serviceOrderRepo struct {
	db Database
}

func NewServiceOrderRepo(db Database) ServiceOrderRepository {
	return &serviceOrderRepo{db: db}
}

const serviceOrderColumns = `id, order_number, client_id, vehicle_id, description, diagnosis, status, priority,
	total_labor, total_parts, total_amount, started_at, completed_at, estimated_completion, created_at, updated_at`

func scanServiceOrder(row scanner) (*models.ServiceOrder, error) {
	o := &models.ServiceOrder{}
	err := row.Scan(&o.ID, &o.OrderNumber, &o.ClientID, &o.VehicleID, &o.Description, &o.Diagnosis, &o.Status, &o.Priority,
		&o.TotalLabor, &o.TotalParts, &o.TotalAmount, &o.StartedAt, &o.CompletedAt, &o.EstimatedCompletion, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Create inserts the order and fills in the generated order number.
func (r *serviceOrderRepo) Create(ctx context.Context, order *models.ServiceOrder) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	query := `
		INSERT INTO service_orders (id, order_number, client_id, vehicle_id, description, diagnosis, status, priority,
			total_labor, total_parts, total_amount, started_at, completed_at, estimated_completion, created_at, updated_at)
		VALUES ($1, generate_order_number(), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING order_number, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, order.ID, order.ClientID, order.VehicleID, order.Description, order.Diagnosis, order.Status, order.Priority,
		order.TotalLabor, order.TotalParts, order.TotalAmount, order.StartedAt, order.CompletedAt, order.EstimatedCompletion).
		Scan(&order.OrderNumber, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create service order: %w", err)
	}
	return nil
}

func (r *serviceOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders WHERE id = $1`
	order, err := scanServiceOrder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound("get service order", err)
	}
	return order, nil
}

func (r *serviceOrderRepo) Update(ctx context.Context, order *models.ServiceOrder) error {
	query := `
		UPDATE service_orders
		SET client_id = $1, vehicle_id = $2, description = $3, diagnosis = $4, status = $5, priority = $6,
			total_labor = $7, total_parts = $8, total_amount = $9, started_at = $10, completed_at = $11,
			estimated_completion = $12, updated_at = NOW()
		WHERE id = $13
	`
	return execOne(ctx, r.db, "update service order", query, order.ClientID, order.VehicleID, order.Description, order.Diagnosis,
		order.Status, order.Priority, order.TotalLabor, order.TotalParts, order.TotalAmount, order.StartedAt, order.CompletedAt,
		order.EstimatedCompletion, order.ID)
}

func (r *serviceOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, "delete service order", `DELETE FROM service_orders WHERE id = $1`, id)
}

func (r *serviceOrderRepo) List(ctx context.Context, limit, offset int) ([]*models.ServiceOrder, error) {
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	orders, err := collect(rows, scanServiceOrder)
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	return orders, nil
}

func (r *serviceOrderRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM service_orders WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count service orders by status: %w", err)
	}
	return count, nil
}

// ListCompletedAmounts returns total_amount for every order completed at or
// after from and, when to is set, at or before to.
func (r *serviceOrderRepo) ListCompletedAmounts(ctx context.Context, from time.Time, to *time.Time) ([]*float64, error) {
	query := `SELECT total_amount FROM service_orders WHERE completed_at IS NOT NULL AND completed_at >= $1`
	args := []any{from}
	if to != nil {
		query += ` AND completed_at <= $2`
		args = append(args, *to)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list completed amounts: %w", err)
	}
	amounts, err := collect(rows, func(row scanner) (*float64, error) {
		var amount *float64
		err := row.Scan(&amount)
		return amount, err
	})
	if err != nil {
		return nil, fmt.Errorf("list completed amounts: %w", err)
	}
	return amounts, nil
}

// ListClientIDs returns client_id for every order created inside the given
// bounds. Nil bounds are open.
func (r *serviceOrderRepo) ListClientIDs(ctx context.Context, from, to *time.Time) ([]*uuid.UUID, error) {
	query := `SELECT client_id FROM service_orders WHERE 1 = 1`
	var args []any
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND created_at <= $%d`, len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list order client ids: %w", err)
	}
	ids, err := collect(rows, func(row scanner) (*uuid.UUID, error) {
		var id *uuid.UUID
		err := row.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, fmt.Errorf("list order client ids: %w", err)
	}
	return ids, nil
}

// ListRecent returns the newest orders joined with client and vehicle.
func (r *serviceOrderRepo) ListRecent(ctx context.Context, limit int) ([]models.RecentOrderRow, error) {
	query := `
		SELECT so.id, so.order_number, so.description, so.status, so.total_amount, so.created_at,
			c.name, v.brand, v.model
		FROM service_orders so
		LEFT JOIN clients c ON c.id = so.client_id
		LEFT JOIN vehicles v ON v.id = so.vehicle_id
		ORDER BY so.created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	out, err := collect(rows, func(row scanner) (models.RecentOrderRow, error) {
		var o models.RecentOrderRow
		err := row.Scan(&o.ID, &o.OrderNumber, &o.Description, &o.Status, &o.TotalAmount, &o.CreatedAt,
			&o.ClientName, &o.VehicleBrand, &o.VehicleModel)
		return o, err
	})
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	return out, nil
}
