package repositories

import (
	"context"
	"fmt"

	"workshoppro/internal/models"

	"github.com/google/uuid"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	Update(ctx context.Context, vehicle *models.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Vehicle, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*models.Vehicle, error)
}

type vehicleRepo struct {
	db Database
}

func NewVehicleRepo(db Database) VehicleRepository {
	return &vehicleRepo{db: db}
}

const vehicleColumns = `id, client_id, brand, model, year, license_plate, color, engine, mileage, notes, created_at, updated_at`

func scanVehicle(row scanner) (*models.Vehicle, error) {
	v := &models.Vehicle{}
	err := row.Scan(&v.ID, &v.ClientID, &v.Brand, &v.Model, &v.Year, &v.LicensePlate, &v.Color, &v.Engine, &v.Mileage, &v.Notes, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	query := `
		INSERT INTO vehicles (id, client_id, brand, model, year, license_plate, color, engine, mileage, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, vehicle.ID, vehicle.ClientID, vehicle.Brand, vehicle.Model, vehicle.Year,
		vehicle.LicensePlate, vehicle.Color, vehicle.Engine, vehicle.Mileage, vehicle.Notes).
		Scan(&vehicle.CreatedAt, &vehicle.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create vehicle: %w", err)
	}
	return nil
}

func (r *vehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound("get vehicle", err)
	}
	return vehicle, nil
}

func (r *vehicleRepo) Update(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		UPDATE vehicles
		SET client_id = $1, brand = $2, model = $3, year = $4, license_plate = $5, color = $6, engine = $7,
			mileage = $8, notes = $9, updated_at = NOW()
		WHERE id = $10
	`
	return execOne(ctx, r.db, "update vehicle", query, vehicle.ClientID, vehicle.Brand, vehicle.Model, vehicle.Year,
		vehicle.LicensePlate, vehicle.Color, vehicle.Engine, vehicle.Mileage, vehicle.Notes, vehicle.ID)
}

func (r *vehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, "delete vehicle", `DELETE FROM vehicles WHERE id = $1`, id)
}

func (r *vehicleRepo) List(ctx context.Context, limit, offset int) ([]*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	vehicles, err := collect(rows, scanVehicle)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *vehicleRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE client_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list client vehicles: %w", err)
	}
	vehicles, err := collect(rows, scanVehicle)
	if err != nil {
		return nil, fmt.Errorf("list client vehicles: %w", err)
	}
	return vehicles, nil
}
