package database

import (
	"context"
	"fmt"
	"time"

	"LearningHubBackend/models"
)

func (s *Store) InsertNotification(ctx context.Context, n models.Notification) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO notifications (recipient_id, sender_name, sender_pic, message, type)
		VALUES ($1, $2, $3, $4, $5)`,
		n.RecipientID, n.SenderName, nullString(n.SenderPic), n.Message, n.Type)
	if err != nil {
		return fmt.Errorf("InsertNotification query failed: %w", err)
	}
	return nil
}

func (s *Store) ListNotifications(ctx context.Context, recipientID string, limit int) ([]models.Notification, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, recipient_id, COALESCE(sender_name, ''), COALESCE(sender_pic, ''), message, type, is_read, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("ListNotifications query failed: %w", err)
	}
	defer rows.Close()

	out := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.SenderName, &n.SenderPic, &n.Message, &n.Type,
			&n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListNotifications scan failed: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkNotificationRead only touches notifications owned by recipientID.
func (s *Store) MarkNotificationRead(ctx context.Context, id int64, recipientID string) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE notifications SET is_read = true WHERE id = $1 AND recipient_id = $2`, id, recipientID)
	if err != nil {
		return fmt.Errorf("MarkNotificationRead query failed: %w", err)
	}
	return expectOne(res)
}

func (s *Store) MarkAllNotificationsRead(ctx context.Context, recipientID string) (int64, error) {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE notifications SET is_read = true WHERE recipient_id = $1 AND is_read = false`, recipientID)
	if err != nil {
		return 0, fmt.Errorf("MarkAllNotificationsRead query failed: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) PruneReadNotifications(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM notifications WHERE is_read = true AND created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("PruneReadNotifications query failed: %w", err)
	}
	return res.RowsAffected()
}
