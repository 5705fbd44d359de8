package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/udisondev/squadsim/internal/db/migrations"
)

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// Migrate applies pending migrations for the store's dialect.
func (d *DB) Migrate(ctx context.Context) error {
	switch d.driver {
	case DriverPostgres:
		connStr := stdlib.RegisterConnConfig(d.pool.Config().ConnConfig)
		defer stdlib.UnregisterConnConfig(connStr)

		sqlDB, err := sql.Open("pgx", connStr)
		if err != nil {
			return fmt.Errorf("opening sql connection for migrations: %w", err)
		}
		defer sqlDB.Close()
		return runMigrations(ctx, sqlDB, "postgres", "postgres")
	case DriverSQLite:
		return runMigrations(ctx, d.sqlDB, "sqlite3", "sqlite")
	}
	return fmt.Errorf("unknown driver %q", d.driver)
}

func runMigrations(ctx context.Context, sqlDB *sql.DB, dialect, dir string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
