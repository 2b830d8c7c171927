package repositories

import (
	"context"
	"fmt"

	"workshoppro/internal/models"

	"github.com/google/uuid"
)

type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Client, error)
}

type clientRepo struct {
	db Database
}

func NewClientRepo(db Database) ClientRepository {
	return &clientRepo{db: db}
}

const clientColumns = `id, name, email, phone, address, document, notes, created_at, updated_at`

func scanClient(row scanner) (*models.Client, error) {
	c := &models.Client{}
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Document, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepo) Create(ctx context.Context, client *models.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	query := `
		INSERT INTO clients (id, name, email, phone, address, document, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, client.ID, client.Name, client.Email, client.Phone, client.Address, client.Document, client.Notes).
		Scan(&client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *clientRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	client, err := scanClient(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound("get client", err)
	}
	return client, nil
}

func (r *clientRepo) Update(ctx context.Context, client *models.Client) error {
	query := `
		UPDATE clients
		SET name = $1, email = $2, phone = $3, address = $4, document = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
	`
	return execOne(ctx, r.db, "update client", query, client.Name, client.Email, client.Phone, client.Address, client.Document, client.Notes, client.ID)
}

func (r *clientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, "delete client", `DELETE FROM clients WHERE id = $1`, id)
}

func (r *clientRepo) List(ctx context.Context, limit, offset int) ([]*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	clients, err := collect(rows, scanClient)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}
