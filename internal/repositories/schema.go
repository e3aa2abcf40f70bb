package repositories

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/cultureschool-backend/internal/logger"
)

// Schema creates every table used by the repositories. It is idempotent.
//
//go:embed schema.sql
var Schema string

// Migrate applies Schema.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	logger.Log.Infow("schema migration", "error", err)
	return err
}
