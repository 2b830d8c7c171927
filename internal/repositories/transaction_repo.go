package repositories

import (
	"context"
	"fmt"

	"workshoppro/internal/models"

	"github.com/google/uuid"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Update(ctx context.Context, transaction *models.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Transaction, error)
	ListByPeriod(ctx context.Context, from, to string) ([]*models.Transaction, error)
}

type transactionRepo struct {
	db Database
}

func NewTransactionRepo(db Database) TransactionRepository {
	return &transactionRepo{db: db}
}

const transactionColumns = `id, type, description, amount, category, date::text, status, reference, notes, created_at, updated_at`

func scanTransaction(row scanner) (*models.Transaction, error) {
	t := &models.Transaction{}
	err := row.Scan(&t.ID, &t.Type, &t.Description, &t.Amount, &t.Category, &t.Date, &t.Status, &t.Reference, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	query := `
		INSERT INTO transactions (id, type, description, amount, category, date, status, reference, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, t.ID, t.Type, t.Description, t.Amount, t.Category, t.Date, t.Status, t.Reference, t.Notes).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound("get transaction", err)
	}
	return t, nil
}

func (r *transactionRepo) Update(ctx context.Context, t *models.Transaction) error {
	query := `
		UPDATE transactions
		SET type = $1, description = $2, amount = $3, category = $4, date = $5::date, status = $6, reference = $7,
			notes = $8, updated_at = NOW()
		WHERE id = $9
	`
	return execOne(ctx, r.db, "update transaction", query, t.Type, t.Description, t.Amount, t.Category, t.Date, t.Status, t.Reference, t.Notes, t.ID)
}

func (r *transactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, "delete transaction", `DELETE FROM transactions WHERE id = $1`, id)
}

func (r *transactionRepo) List(ctx context.Context, limit, offset int) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	out, err := collect(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return out, nil
}

// ListByPeriod returns transactions dated within [from, to]. Empty bounds
// are open.
func (r *transactionRepo) ListByPeriod(ctx context.Context, from, to string) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1 = 1`
	var args []any
	if from != "" {
		args = append(args, from)
		query += fmt.Sprintf(` AND date >= $%d::date`, len(args))
	}
	if to != "" {
		args = append(args, to)
		query += fmt.Sprintf(` AND date <= $%d::date`, len(args))
	}
	query += ` ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions by period: %w", err)
	}
	out, err := collect(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("list transactions by period: %w", err)
	}
	return out, nil
}
