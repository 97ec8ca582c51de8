package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"child-immunization-tracker/internal/domain/users"
	"child-immunization-tracker/internal/ports/auth"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_users (id, anonymous, role, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		u.ID,
		u.Anonymous,
		nullRole(u.Role),
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	var u users.User
	var role sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, anonymous, role, created_at, updated_at
		FROM app_users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Anonymous, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	if role.Valid {
		u.Role = auth.Role(role.String)
	}
	return u, nil
}

func (r *UsersRepo) SetRole(ctx context.Context, id string, role auth.Role, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_users (id, anonymous, role, created_at, updated_at)
		VALUES ($1, FALSE, $2, $3, $3)
		ON CONFLICT (id) DO UPDATE SET role = EXCLUDED.role, updated_at = EXCLUDED.updated_at
	`, id, nullRole(role), at)
	return err
}

func nullRole(r auth.Role) sql.NullString {
	if r == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: string(r), Valid: true}
}
