package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/lovesurprise/internal/client/migrations"
	"github.com/dmitrijs2005/lovesurprise/internal/filex"
)

var gooseUpContext = goose.UpContext

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate local database: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the local SQLite file at path and
// brings its schema up to date.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}
	// one writer keeps SQLite free of "database is locked" errors
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
