package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"portfolio-admin/internal/model"
)

type NotificationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewNotificationRepository(db *pgxpool.Pool, logger *zap.Logger) *NotificationRepository {
	return &NotificationRepository{db: db, logger: logger}
}

// Insert writes one admin feed entry and returns its ID.
func (r *NotificationRepository) Insert(ctx context.Context, kind, message string) (int64, error) {
	r.logger.Debug("Inserting notification", zap.String("kind", kind))

	query := `
        INSERT INTO notifications (kind, message)
        VALUES ($1, $2)
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(ctx, query, kind, message).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert notification",
			zap.Error(err),
			zap.String("kind", kind),
		)
		return 0, err
	}

	r.logger.Info("Notification inserted successfully",
		zap.Int64("notification_id", id),
		zap.String("kind", kind),
	)
	return id, nil
}

// List returns the newest notifications, capped at limit.
func (r *NotificationRepository) List(ctx context.Context, limit int) ([]model.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
        SELECT id, kind, message, is_read, created_at
        FROM notifications
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error("Failed to query notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	notifications := []model.Notification{}
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.Kind, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			r.logger.Error("Failed to scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to read notification rows", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

// MarkAsRead flags one notification as read.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to mark notification as read",
			zap.Error(err),
			zap.Int64("notification_id", id),
		)
	}
	return err
}
