package postgres

import (
	"context"
	"database/sql"

	"child-immunization-tracker/internal/domain/notifications"
)

type NotificationsRepo struct {
	db *sql.DB
}

func NewNotificationsRepo(db *sql.DB) *NotificationsRepo {
	return &NotificationsRepo{db: db}
}

func (r *NotificationsRepo) Exists(ctx context.Context, userID, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM notifications WHERE user_id = $1 AND id = $2)
	`, userID, id).Scan(&exists)
	return exists, err
}

// Create usa la PK (user_id, id): si ya existía no inserta y devuelve ErrConflict.
func (r *NotificationsRepo) Create(ctx context.Context, n notifications.Record) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (
			user_id, id, kind,
			child_id, child_name, vaccine_name,
			due_date, message, read,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (user_id, id) DO NOTHING
	`,
		n.UserID,
		n.ID,
		string(n.Kind),
		n.ChildID,
		n.ChildName,
		n.VaccineName,
		n.DueDate,
		n.Message,
		n.Read,
		n.CreatedAt,
	)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return notifications.ErrConflict
	}
	return nil
}

func (r *NotificationsRepo) MarkRead(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notifications SET read = TRUE WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notifications.ErrNotFound
	}
	return nil
}

func (r *NotificationsRepo) ListByUser(ctx context.Context, userID string) ([]notifications.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			user_id, id, kind,
			child_id, child_name, vaccine_name,
			due_date, message, read,
			created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notifications.Record, 0)
	for rows.Next() {
		var n notifications.Record
		var kind string
		if err := rows.Scan(
			&n.UserID,
			&n.ID,
			&kind,
			&n.ChildID,
			&n.ChildName,
			&n.VaccineName,
			&n.DueDate,
			&n.Message,
			&n.Read,
			&n.CreatedAt,
		); err != nil {
			return nil, err
		}
		n.Kind = notifications.Kind(kind)
		n.DueDate = dateOnly(n.DueDate)
		out = append(out, n)
	}
	return out, rows.Err()
}
