package repositories

import (
	"context"
	"fmt"

	"workshoppro/internal/models"

	"github.com/google/uuid"
)

type PartRepository interface {
	Create(ctx context.Context, part *models.Part) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Part, error)
	Update(ctx context.Context, part *models.Part) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Part, error)
}

type partRepo struct {
	db Database
}

func NewPartRepo(db Database) PartRepository {
	return &partRepo{db: db}
}

const partColumns = `id, name, category, part_number, description, unit_price, supplier_id, created_at, updated_at`

func scanPart(row scanner) (*models.Part, error) {
	p := &models.Part{}
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.PartNumber, &p.Description, &p.UnitPrice, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *partRepo) Create(ctx context.Context, part *models.Part) error {
	if part.ID == uuid.Nil {
		part.ID = uuid.New()
	}
	query := `
		INSERT INTO parts (id, name, category, part_number, description, unit_price, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, part.ID, part.Name, part.Category, part.PartNumber, part.Description, part.UnitPrice, part.SupplierID).
		Scan(&part.CreatedAt, &part.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create part: %w", err)
	}
	return nil
}

func (r *partRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`
	part, err := scanPart(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound("get part", err)
	}
	return part, nil
}

func (r *partRepo) Update(ctx context.Context, part *models.Part) error {
	query := `
		UPDATE parts
		SET name = $1, category = $2, part_number = $3, description = $4, unit_price = $5, supplier_id = $6, updated_at = NOW()
		WHERE id = $7
	`
	return execOne(ctx, r.db, "update part", query, part.Name, part.Category, part.PartNumber, part.Description, part.UnitPrice, part.SupplierID, part.ID)
}

func (r *partRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, "delete part", `DELETE FROM parts WHERE id = $1`, id)
}

func (r *partRepo) List(ctx context.Context, limit, offset int) ([]*models.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	parts, err := collect(rows, scanPart)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	return parts, nil
}
