package repositories

import (
	"context"
	"fmt"

	"workshoppro/internal/models"

	"github.com/google/uuid"
)

type QuotationRepository interface {
	Create(ctx context.Context, quotation *models.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Quotation, error)
	Update(ctx context.Context, quotation *models.Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Quotation, error)
}

type quotationRepo struct {
	db Database
}

func NewQuotationRepo(db Database) QuotationRepository {
	return &quotationRepo{db: db}
}

const quotationColumns = `id, quotation_number, client_id, vehicle_id, service_description, parts_description, total_amount,
	status, supplier, valid_until::text, notes, created_at, updated_at`

func scanQuotation(row scanner) (*models.Quotation, error) {
	q := &models.Quotation{}
	err := row.Scan(&q.ID, &q.QuotationNumber, &q.ClientID, &q.VehicleID, &q.ServiceDescription, &q.PartsDescription, &q.TotalAmount,
		&q.Status, &q.Supplier, &q.ValidUntil, &q.Notes, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Create inserts the quotation and fills in the generated quotation number.
func (r *quotationRepo) Create(ctx context.Context, quotation *models.Quotation) error {
	if quotation.ID == uuid.Nil {
		quotation.ID = uuid.New()
	}
	if quotation.Status == "" {
		quotation.Status = models.QuotationStatusPending
	}
	query := `
		INSERT INTO quotations (id, quotation_number, client_id, vehicle_id, service_description, parts_description, total_amount,
			status, supplier, valid_until, notes, created_at, updated_at)
		VALUES ($1, generate_quotation_number(), $2, $3, $4, $5, $6, $7, $8, $9::date, $10, NOW(), NOW())
		RETURNING quotation_number, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, quotation.ID, quotation.ClientID, quotation.VehicleID, quotation.ServiceDescription,
		quotation.PartsDescription, quotation.TotalAmount, quotation.Status, quotation.Supplier, quotation.ValidUntil, quotation.Notes).
		Scan(&quotation.QuotationNumber, &quotation.CreatedAt, &quotation.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create quotation: %w", err)
	}
	return nil
}

func (r *quotationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE id = $1`
	quotation, err := scanQuotation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound("get quotation", err)
	}
	return quotation, nil
}

func (r *quotationRepo) Update(ctx context.Context, quotation *models.Quotation) error {
	query := `
		UPDATE quotations
		SET client_id = $1, vehicle_id = $2, service_description = $3, parts_description = $4, total_amount = $5,
			status = $6, supplier = $7, valid_until = $8::date, notes = $9, updated_at = NOW()
		WHERE id = $10
	`
	return execOne(ctx, r.db, "update quotation", query, quotation.ClientID, quotation.VehicleID, quotation.ServiceDescription,
		quotation.PartsDescription, quotation.TotalAmount, quotation.Status, quotation.Supplier, quotation.ValidUntil,
		quotation.Notes, quotation.ID)
}

func (r *quotationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, "delete quotation", `DELETE FROM quotations WHERE id = $1`, id)
}

func (r *quotationRepo) List(ctx context.Context, limit, offset int) ([]*models.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	quotations, err := collect(rows, scanQuotation)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	return quotations, nil
}
