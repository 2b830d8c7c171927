package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"workshoppro/internal/caching"
	"workshoppro/internal/logging"
	"workshoppro/internal/models"
	"workshoppro/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidLogo  = errors.New("logo must be a PNG, JPEG, SVG or WebP image")
	ErrLogoTooLarge = errors.New("logo exceeds the maximum allowed size")
)

var logoExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
}

type SettingsService interface {
	Get(ctx context.Context) (*models.WorkshopSettings, error)
	Save(ctx context.Context, settings *models.WorkshopSettings) (*models.WorkshopSettings, error)
	UploadLogo(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (*models.WorkshopSettings, error)
	LogoURL(ctx context.Context) (string, error)
}

type SettingsOptions struct {
	Bucket        string
	PresignExpiry time.Duration
	MaxLogoBytes  int64
	CacheTTL      time.Duration
}

type settingsService struct {
	repo    repositories.WorkshopSettingsRepository
	storage MinioService
	cache   caching.CacheService
	logger  *logging.Logger
	opts    SettingsOptions
}

func NewSettingsService(repo repositories.WorkshopSettingsRepository, storage MinioService, cache caching.CacheService, logger *logging.Logger, opts SettingsOptions) SettingsService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &settingsService{repo: repo, storage: storage, cache: cache, logger: logger, opts: opts}
}

// Get returns the stored settings, or the defaults if none were saved yet.
func (s *settingsService) Get(ctx context.Context) (*models.WorkshopSettings, error) {
	if s.cache != nil {
		cached, err := s.cache.GetSettings(ctx)
		if err != nil {
			s.logger.Warn(ctx, "settings", "cache read failed", map[string]any{"error": err.Error()})
		} else if cached != nil {
			return cached, nil
		}
	}

	settings, err := s.repo.Get(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.DefaultWorkshopSettings(), nil
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetSettings(ctx, settings, s.opts.CacheTTL); err != nil {
			s.logger.Warn(ctx, "settings", "cache write failed", map[string]any{"error": err.Error()})
		}
	}
	return settings, nil
}

// Save updates the single settings row, creating it on first save. A nil
// logo keeps the stored one.
func (s *settingsService) Save(ctx context.Context, settings *models.WorkshopSettings) (*models.WorkshopSettings, error) {
	existing, err := s.repo.Get(ctx)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		if err := s.repo.Create(ctx, settings); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
		if settings.LogoURL == nil {
			settings.LogoURL = existing.LogoURL
		}
		if err := s.repo.Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	s.invalidate(ctx)
	s.logger.Info(ctx, "settings", "workshop settings saved", map[string]any{"workshop_name": settings.WorkshopName})
	return settings, nil
}

// UploadLogo stores the image and points the settings at it. The logo_url
// column holds the object key.
func (s *settingsService) UploadLogo(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (*models.WorkshopSettings, error) {
	ext, ok := logoExtensions[strings.ToLower(contentType)]
	if !ok {
		return nil, ErrInvalidLogo
	}
	if s.opts.MaxLogoBytes > 0 && size > s.opts.MaxLogoBytes {
		return nil, ErrLogoTooLarge
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.storage.EnsureBucketExists(ctx, s.opts.Bucket); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}
	objectKey := fmt.Sprintf("logos/%s%s", uuid.NewString(), ext)
	if err := s.storage.UploadObject(ctx, s.opts.Bucket, objectKey, reader, size, contentType); err != nil {
		return nil, fmt.Errorf("failed to upload logo to storage: %w", err)
	}

	previous := current.LogoURL
	updated := *current
	updated.LogoURL = &objectKey
	saved, err := s.Save(ctx, &updated)
	if err != nil {
		return nil, err
	}

	if previous != nil && *previous != "" && *previous != objectKey {
		if err := s.storage.DeleteObject(ctx, s.opts.Bucket, *previous); err != nil {
			s.logger.Warn(ctx, "settings", "failed to delete previous logo", map[string]any{"object": *previous, "error": err.Error()})
		}
	}
	s.logger.Info(ctx, "settings", "workshop logo uploaded", map[string]any{"object": objectKey, "filename": filename})
	return saved, nil
}

// LogoURL returns a presigned download URL for the current logo.
func (s *settingsService) LogoURL(ctx context.Context) (string, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	if settings.LogoURL == nil || *settings.LogoURL == "" {
		return "", repositories.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, s.opts.Bucket, *settings.LogoURL, s.opts.PresignExpiry)
}

func (s *settingsService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteSettings(ctx); err != nil {
		s.logger.Warn(ctx, "settings", "cache invalidation failed", map[string]any{"error": err.Error()})
	}
}
