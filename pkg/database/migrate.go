package database

import (
	"context"
	"fmt"
)

// Startup DDL. Idempotent so repeated boots are safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         UUID PRIMARY KEY,
		username   TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		role       INT  NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS foods (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		price       DOUBLE PRECISION NOT NULL,
		category    TEXT NOT NULL,
		diet        TEXT[] NOT NULL DEFAULT '{}',
		ingredients TEXT[] NOT NULL DEFAULT '{}',
		ratings     INT[]  NOT NULL DEFAULT '{}',
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_foods_category ON foods (category)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id         UUID PRIMARY KEY,
		orderer    TEXT NOT NULL,
		phone_nr   TEXT NOT NULL,
		items      UUID[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}
	return nil
}
