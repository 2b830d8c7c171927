package repositories

import (
	"context"
	"fmt"

	"workshoppro/internal/models"

	"github.com/google/uuid"
)

type WorkshopSettingsRepository interface {
	Get(ctx context.Context) (*models.WorkshopSettings, error)
	Create(ctx context.Context, settings *models.WorkshopSettings) error
	Update(ctx context.Context, settings *models.WorkshopSettings) error
}

type workshopSettingsRepo struct {
	db Database
}

func NewWorkshopSettingsRepo(db Database) WorkshopSettingsRepository {
	return &workshopSettingsRepo{db: db}
}

// Get returns the single settings row, or ErrNotFound before the first save.
func (r *workshopSettingsRepo) Get(ctx context.Context) (*models.WorkshopSettings, error) {
	query := `
		SELECT id, workshop_name, phone, whatsapp, email, address, theme, primary_color, secondary_color, logo_url, created_at, updated_at
		FROM workshop_settings
		ORDER BY created_at ASC
		LIMIT 1
	`
	s := &models.WorkshopSettings{}
	err := r.db.QueryRow(ctx, query).Scan(&s.ID, &s.WorkshopName, &s.Phone, &s.WhatsApp, &s.Email, &s.Address,
		&s.Theme, &s.PrimaryColor, &s.SecondaryColor, &s.LogoURL, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, notFound("get workshop settings", err)
	}
	return s, nil
}

func (r *workshopSettingsRepo) Create(ctx context.Context, s *models.WorkshopSettings) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	query := `
		INSERT INTO workshop_settings (id, workshop_name, phone, whatsapp, email, address, theme, primary_color, secondary_color, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, s.ID, s.WorkshopName, s.Phone, s.WhatsApp, s.Email, s.Address, s.Theme,
		s.PrimaryColor, s.SecondaryColor, s.LogoURL).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create workshop settings: %w", err)
	}
	return nil
}

func (r *workshopSettingsRepo) Update(ctx context.Context, s *models.WorkshopSettings) error {
	query := `
		UPDATE workshop_settings
		SET workshop_name = $1, phone = $2, whatsapp = $3, email = $4, address = $5, theme = $6,
			primary_color = $7, secondary_color = $8, logo_url = $9, updated_at = NOW()
		WHERE id = $10
	`
	return execOne(ctx, r.db, "update workshop settings", query, s.WorkshopName, s.Phone, s.WhatsApp, s.Email, s.Address,
		s.Theme, s.PrimaryColor, s.SecondaryColor, s.LogoURL, s.ID)
}
