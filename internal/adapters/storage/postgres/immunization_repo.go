package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"child-immunization-tracker/internal/domain/children"
	"child-immunization-tracker/internal/domain/schedule"
)

// ImmunizationRepo implementa children.Repository y schedule.Repository.
type ImmunizationRepo struct {
	db *sql.DB
}

func NewImmunizationRepo(db *sql.DB) *ImmunizationRepo {
	return &ImmunizationRepo{db: db}
}

// CreateWithSchedule inserta niño y dosis en una transacción.
func (r *ImmunizationRepo) CreateWithSchedule(ctx context.Context, c children.Child, events []schedule.Event) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO children (
			id, name, dob,
			parent_id, parent_name, contact,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		c.ID,
		c.Name,
		c.DOB,
		c.ParentID,
		c.ParentName,
		c.Contact,
		c.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert child: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO vaccinations (
			child_id, name, position,
			due_date, status, given_date
		) VALUES ($1,$2,$3,$4,$5,$6)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range events {
		if _, err = stmt.ExecContext(ctx,
			c.ID,
			e.Name,
			i,
			e.DueDate,
			string(e.Status),
			nullDate(e.GivenDate),
		); err != nil {
			return fmt.Errorf("insert vaccination %s: %w", e.Name, err)
		}
	}

	return tx.Commit()
}

const childColumns = `id, name, dob, parent_id, parent_name, contact, created_at`

func scanChild(row interface{ Scan(...any) error }) (children.Child, error) {
	var c children.Child
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.DOB,
		&c.ParentID,
		&c.ParentName,
		&c.Contact,
		&c.CreatedAt,
	); err != nil {
		return children.Child{}, err
	}
	c.DOB = dateOnly(c.DOB)
	return c, nil
}

func (r *ImmunizationRepo) GetByID(ctx context.Context, id string) (children.Child, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return children.Child{}, children.ErrNotFound
	}

	c, err := scanChild(r.db.QueryRowContext(ctx, `SELECT `+childColumns+` FROM children WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return children.Child{}, children.ErrNotFound
		}
		return children.Child{}, err
	}
	return c, nil
}

func (r *ImmunizationRepo) ListByParent(ctx context.Context, parentID string) ([]children.Child, error) {
	return r.queryChildren(ctx, `
		SELECT `+childColumns+`
		FROM children
		WHERE parent_id = $1
		ORDER BY created_at ASC, id ASC
	`, parentID)
}

func (r *ImmunizationRepo) ListAll(ctx context.Context, filter children.ListFilter) ([]children.Child, error) {
	q := strings.TrimSpace(filter.Query)
	if q == "" {
		return r.queryChildren(ctx, `
			SELECT `+childColumns+`
			FROM children
			ORDER BY created_at ASC, id ASC
		`)
	}

	// strpos evita que % y _ del usuario actúen como comodines.
	return r.queryChildren(ctx, `
		SELECT `+childColumns+`
		FROM children
		WHERE strpos(lower(name), lower($1)) > 0
		ORDER BY created_at ASC, id ASC
	`, q)
}

func (r *ImmunizationRepo) queryChildren(ctx context.Context, query string, args ...any) ([]children.Child, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]children.Child, 0)
	for rows.Next() {
		c, err := scanChild(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanEvent(row interface{ Scan(...any) error }) (schedule.Event, error) {
	var e schedule.Event
	var status string
	var given sql.NullTime
	if err := row.Scan(
		&e.ChildID,
		&e.Name,
		&e.DueDate,
		&status,
		&given,
	); err != nil {
		return schedule.Event{}, err
	}
	e.DueDate = dateOnly(e.DueDate)
	e.Status = schedule.Status(status)
	if given.Valid {
		g := dateOnly(given.Time)
		e.GivenDate = &g
	}
	return e, nil
}

func (r *ImmunizationRepo) ListByChild(ctx context.Context, childID string) ([]schedule.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT child_id, name, due_date, status, given_date
		FROM vaccinations
		WHERE child_id = $1
		ORDER BY position ASC
	`, childID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]schedule.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ImmunizationRepo) Get(ctx context.Context, childID, name string) (schedule.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, `
		SELECT child_id, name, due_date, status, given_date
		FROM vaccinations
		WHERE child_id = $1 AND name = $2
	`, childID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schedule.Event{}, schedule.ErrNotFound
		}
		return schedule.Event{}, err
	}
	return e, nil
}

func (r *ImmunizationRepo) UpdateStatus(ctx context.Context, childID, name string, status schedule.Status, givenDate *time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vaccinations
		SET status = $3, given_date = $4
		WHERE child_id = $1 AND name = $2
	`,
		childID,
		name,
		string(status),
		nullDate(givenDate),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return schedule.ErrNotFound
	}
	return nil
}
