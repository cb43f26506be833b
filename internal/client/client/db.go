package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/eduhub/eduhub/internal/client/migrations"
	"github.com/eduhub/eduhub/internal/client/repositories/contentcache"
	"github.com/eduhub/eduhub/internal/client/repositories/metadata"
	"github.com/eduhub/eduhub/internal/client/repositories/uploads"

	_ "modernc.org/sqlite"
)

// Repositories bundles the local stores opened from one SQLite file.
type Repositories struct {
	DB           *sql.DB
	Metadata     metadata.Repository
	ContentCache contentcache.Repository
	Uploads      uploads.Repository
}

func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		DB:           db,
		Metadata:     metadata.NewSQLiteRepository(db),
		ContentCache: contentcache.NewSQLiteRepository(db),
		Uploads:      uploads.NewSQLiteRepository(db),
	}
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite file at dsn and applies migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}
	return db, nil
}
