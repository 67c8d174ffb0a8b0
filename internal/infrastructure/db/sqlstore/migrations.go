package sqlstore

import (
	"context"
	"fmt"
	"time"
)

type migration struct {
	version int
	name    string
	stmts   []string
}

// Both dialects accept this DDL: SQLite maps BOOLEAN to numeric affinity and
// understands TRUE as 1.
var migrations = []migration{
	{
		version: 1,
		name:    "create_identities",
		stmts: []string{`
			CREATE TABLE IF NOT EXISTS identities (
				id          TEXT PRIMARY KEY,
				login_key   TEXT NOT NULL UNIQUE,
				secret_hash TEXT NOT NULL,
				role        TEXT NOT NULL CHECK (role IN ('standard', 'elevated')),
				created_at  BIGINT NOT NULL
			)`,
		},
	},
	{
		version: 2,
		name:    "create_recipes",
		stmts: []string{`
			CREATE TABLE IF NOT EXISTS recipes (
				id           TEXT PRIMARY KEY,
				name         TEXT NOT NULL,
				mood         TEXT NOT NULL,
				ingredients  TEXT NOT NULL,
				instructions TEXT NOT NULL,
				prep_time    TEXT NOT NULL,
				servings     INTEGER NOT NULL CHECK (servings > 0),
				image        TEXT NOT NULL,
				visible      BOOLEAN NOT NULL DEFAULT TRUE,
				created_at   BIGINT NOT NULL,
				updated_at   BIGINT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_recipes_mood_visible ON recipes (mood, visible)`,
		},
	},
}

// Migrate applies every migration not yet recorded in schema_migrations.
// Each migration runs in its own transaction.
func (d *DB) Migrate(ctx context.Context) error {
	_, err := d.sql.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at BIGINT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		if err := d.apply(ctx, m); err != nil {
			return fmt.Errorf("migration %03d_%s: %w", m.version, m.name, err)
		}
	}
	return nil
}

func (d *DB) apply(ctx context.Context, m migration) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, d.rebind(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`), m.version).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, stmt := range m.stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		d.rebind(`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)`),
		m.version, m.name, toMillis(time.Now()),
	); err != nil {
		return err
	}
	return tx.Commit()
}
