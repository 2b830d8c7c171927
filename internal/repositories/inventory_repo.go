package repositories

import (
	"context"
	"fmt"

	"workshoppro/internal/models"

	"github.com/google/uuid"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.InventoryItem, error)
	ListStockRows(ctx context.Context) ([]models.InventoryStockRow, error)
}

type inventoryRepo struct {
	db Database
}

func NewInventoryRepo(db Database) InventoryRepository {
	return &inventoryRepo{db: db}
}

const inventoryColumns = `id, part_id, current_stock, min_stock, max_stock, location, last_updated`

func scanInventory(row scanner) (*models.InventoryItem, error) {
	i := &models.InventoryItem{}
	err := row.Scan(&i.ID, &i.PartID, &i.CurrentStock, &i.MinStock, &i.MaxStock, &i.Location, &i.LastUpdated)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (r *inventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	query := `
		INSERT INTO inventory (id, part_id, current_stock, min_stock, max_stock, location, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING last_updated
	`
	err := r.db.QueryRow(ctx, query, item.ID, item.PartID, item.CurrentStock, item.MinStock, item.MaxStock, item.Location).
		Scan(&item.LastUpdated)
	if err != nil {
		return fmt.Errorf("create inventory item: %w", err)
	}
	return nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1`
	item, err := scanInventory(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound("get inventory item", err)
	}
	return item, nil
}

func (r *inventoryRepo) Update(ctx context.Context, item *models.InventoryItem) error {
	query := `
		UPDATE inventory
		SET part_id = $1, current_stock = $2, min_stock = $3, max_stock = $4, location = $5, last_updated = NOW()
		WHERE id = $6
	`
	return execOne(ctx, r.db, "update inventory item", query, item.PartID, item.CurrentStock, item.MinStock, item.MaxStock, item.Location, item.ID)
}

func (r *inventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, "delete inventory item", `DELETE FROM inventory WHERE id = $1`, id)
}

func (r *inventoryRepo) List(ctx context.Context, limit, offset int) ([]*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory ORDER BY current_stock ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	items, err := collect(rows, scanInventory)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return items, nil
}

// ListStockRows returns every inventory item with its part and supplier
// names, lowest stock first.
func (r *inventoryRepo) ListStockRows(ctx context.Context) ([]models.InventoryStockRow, error) {
	query := `
		SELECT i.id, i.current_stock, i.min_stock, p.name, s.name
		FROM inventory i
		INNER JOIN parts p ON p.id = i.part_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		ORDER BY i.current_stock ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock rows: %w", err)
	}
	out, err := collect(rows, func(row scanner) (models.InventoryStockRow, error) {
		var s models.InventoryStockRow
		err := row.Scan(&s.ID, &s.CurrentStock, &s.MinStock, &s.PartName, &s.SupplierName)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("list stock rows: %w", err)
	}
	return out, nil
}
