package repositories

import (
	"context"
	"fmt"

	"workshoppro/internal/models"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListUnread(ctx context.Context, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// HasUnreadFor reports whether an unread, unexpired notification already
	// points at the entity.
	HasUnreadFor(ctx context.Context, entityType string, entityID uuid.UUID) (bool, error)
}

type notificationRepo struct {
	db Database
}

func NewNotificationRepo(db Database) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	query := `
		INSERT INTO notifications (id, title, message, type, priority, is_read, related_entity_type, related_entity_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7, $8, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, n.ID, n.Title, n.Message, n.Type, n.Priority, n.RelatedEntityType, n.RelatedEntityID, n.ExpiresAt).
		Scan(&n.CreatedAt)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	n.IsRead = false
	return nil
}

// ListUnread returns unread, unexpired notifications, newest first.
func (r *notificationRepo) ListUnread(ctx context.Context, limit int) ([]*models.Notification, error) {
	query := `
		SELECT id, title, message, type, priority, is_read, related_entity_type, related_entity_id, expires_at, created_at
		FROM notifications
		WHERE is_read = FALSE AND (expires_at IS NULL OR expires_at > NOW())
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}
	out, err := collect(rows, func(row scanner) (*models.Notification, error) {
		n := &models.Notification{}
		err := row.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.Priority, &n.IsRead, &n.RelatedEntityType, &n.RelatedEntityID, &n.ExpiresAt, &n.CreatedAt)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}
	return out, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, "mark notification read", `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
}

func (r *notificationRepo) MarkAllRead(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE is_read = FALSE`)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *notificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, "delete notification", `DELETE FROM notifications WHERE id = $1`, id)
}

func (r *notificationRepo) HasUnreadFor(ctx context.Context, entityType string, entityID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE related_entity_type = $1 AND related_entity_id = $2
			  AND is_read = FALSE AND (expires_at IS NULL OR expires_at > NOW())
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, entityType, entityID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check unread notifications: %w", err)
	}
	return exists, nil
}
