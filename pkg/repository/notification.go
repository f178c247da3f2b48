package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/confdesk/pkg/domain"
)

// NotificationRepository handles per-user notifications
type NotificationRepository struct {
	db *sqlx.DB
	clock
}

type notificationSQL struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Type      string    `db:"type"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

// Create stores a notification
func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = newID()
	}
	if n.Type == "" {
		n.Type = "info"
	}
	n.CreatedAt = r.ts()
	return withRetry(ctx, "create notification", func() error {
		_, err := r.db.ExecContext(ctx, `INSERT INTO notifications (id, user_id, title, message, type, read, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`, n.ID, n.UserID, n.Title, n.Message, n.Type, n.Read, n.CreatedAt)
		return err
	})
}

// ListByUser returns the user's notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	var rows []notificationSQL
	err := r.db.SelectContext(ctx, &rows, `SELECT id, user_id, title, message, type, read, created_at
		FROM notifications WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("get notifications of %s: %w", userID, err)
	}
	res := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.Notification(row))
	}
	return res, nil
}

// MarkRead marks one unread notification of the user as read
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id string) error {
	return withRetry(ctx, "mark notification read", func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE notifications SET read = 1 WHERE id = ? AND user_id = ? AND read = 0", id, userID)
		return err
	})
}

// MarkAllRead marks every unread notification of the user as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	return withRetry(ctx, "mark all notifications read", func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE notifications SET read = 1 WHERE user_id = ? AND read = 0", userID)
		return err
	})
}

// UnreadCount returns the number of unread notifications of the user
func (r *NotificationRepository) UnreadCount(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM notifications WHERE user_id = ? AND read = 0", userID); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}
