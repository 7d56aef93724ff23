package shared

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed sql/schema.sql
var schemaSQL string

// EnsureSchema creates the recipes table when it does not exist yet.
//
// Safe to call on every startup; existing rows are never touched.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// HasSchema reports whether the recipes table exists.
func HasSchema(ctx context.Context, db *sql.DB) (bool, error) {
	var name string
	err := db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'recipes'",
	).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to inspect schema: %w", err)
	}
	return true, nil
}
