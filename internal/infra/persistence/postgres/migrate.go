package postgres

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"authgate/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// migrate applies the embedded schema migrations. The users table and its
// unique email constraint come from here; the repositories assume both exist.
func migrate(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) error {
	goose.SetLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set migration dialect")
	}

	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
