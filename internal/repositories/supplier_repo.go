package repositories

import (
	"context"
	"fmt"

	"workshoppro/internal/models"

	"github.com/google/uuid"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Supplier, error)
}

type supplierRepo struct {
	db Database
}

func NewSupplierRepo(db Database) SupplierRepository {
	return &supplierRepo{db: db}
}

const supplierColumns = `id, name, contact_person, email, phone, address, notes, created_at, updated_at`

func scanSupplier(row scanner) (*models.Supplier, error) {
	s := &models.Supplier{}
	err := row.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *supplierRepo) Create(ctx context.Context, supplier *models.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	query := `
		INSERT INTO suppliers (id, name, contact_person, email, phone, address, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, supplier.ID, supplier.Name, supplier.ContactPerson, supplier.Email, supplier.Phone, supplier.Address, supplier.Notes).
		Scan(&supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

func (r *supplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	supplier, err := scanSupplier(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound("get supplier", err)
	}
	return supplier, nil
}

func (r *supplierRepo) Update(ctx context.Context, supplier *models.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $1, contact_person = $2, email = $3, phone = $4, address = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
	`
	return execOne(ctx, r.db, "update supplier", query, supplier.Name, supplier.ContactPerson, supplier.Email, supplier.Phone, supplier.Address, supplier.Notes, supplier.ID)
}

func (r *supplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, "delete supplier", `DELETE FROM suppliers WHERE id = $1`, id)
}

func (r *supplierRepo) List(ctx context.Context, limit, offset int) ([]*models.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	suppliers, err := collect(rows, scanSupplier)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}
