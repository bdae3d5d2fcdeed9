package store

import (
	"context"

	"door-booking-api/internal/model"
)

const notifCols = `id, user_id, appointment_id, message, is_read, created_at`

// CreateNotification inserts a reminder; the unique index on
// (appointment_id, user_id) makes concurrent sweeps idempotent, so a
// duplicate insert is silently dropped.
func (s *Store) CreateNotification(ctx context.Context, n *model.Notification) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO notifications (id, user_id, appointment_id, message, is_read, created_at)
		 VALUES ($1,$2,$3,$4,$5,NOW())
		 ON CONFLICT (appointment_id, user_id) DO NOTHING`,
		n.ID, n.UserID, n.AppointmentID, n.Message, n.IsRead,
	)
	return err
}

func (s *Store) NotificationExists(ctx context.Context, appointmentID, userID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM notifications WHERE appointment_id = $1 AND user_id = $2)`,
		appointmentID, userID).Scan(&exists)
	return exists, err
}

func (s *Store) ListNotifications(ctx context.Context, userID string) ([]model.Notification, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+notifCols+` FROM notifications
		 WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.AppointmentID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkNotificationRead flips the read flag for the caller's own
// notification and returns the updated row; pgx.ErrNoRows means no such
// notification belongs to that user. Re-marking a read notification is
// a no-op update, so the call stays idempotent.
func (s *Store) MarkNotificationRead(ctx context.Context, id, userID string) (*model.Notification, error) {
	n := &model.Notification{}
	err := s.pool.QueryRow(ctx,
		`UPDATE notifications SET is_read = TRUE
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+notifCols, id, userID,
	).Scan(&n.ID, &n.UserID, &n.AppointmentID, &n.Message, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return n, nil
}
