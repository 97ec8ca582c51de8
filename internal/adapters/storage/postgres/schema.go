package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema es idempotente: se puede correr en cada arranque.
const Schema = `
CREATE TABLE IF NOT EXISTS app_users (
	id          TEXT PRIMARY KEY,
	anonymous   BOOLEAN NOT NULL DEFAULT FALSE,
	role        TEXT NULL CHECK (role IN ('parent', 'healthcare_worker')),
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS children (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	dob          DATE NOT NULL,
	parent_id    TEXT NOT NULL,
	parent_name  TEXT NOT NULL,
	contact      TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS children_parent_id_idx ON children (parent_id);

CREATE TABLE IF NOT EXISTS vaccinations (
	child_id    TEXT NOT NULL REFERENCES children (id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	position    INTEGER NOT NULL,
	due_date    DATE NOT NULL,
	status      TEXT NOT NULL CHECK (status IN ('Due', 'Done')),
	given_date  DATE NULL,
	PRIMARY KEY (child_id, name)
);

CREATE TABLE IF NOT EXISTS notifications (
	user_id       TEXT NOT NULL,
	id            TEXT NOT NULL,
	kind          TEXT NOT NULL,
	child_id      TEXT NOT NULL,
	child_name    TEXT NOT NULL,
	vaccine_name  TEXT NOT NULL,
	due_date      DATE NOT NULL,
	message       TEXT NOT NULL,
	read          BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (user_id, id)
);
`

func CreateSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
