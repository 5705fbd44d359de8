package db

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Driver names a result store backend.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

const sqlitePrefix = "sqlite://"

// ParseDSN splits a store DSN into its driver and the connection string
// the driver expects. PostgreSQL DSNs pass through unchanged.
func ParseDSN(dsn string) (Driver, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres, dsn, nil
	case strings.HasPrefix(dsn, sqlitePrefix):
		path := strings.TrimPrefix(dsn, sqlitePrefix)
		if strings.TrimSpace(path) == "" {
			return "", "", fmt.Errorf("sqlite dsn %q has no path", dsn)
		}
		return DriverSQLite, path, nil
	}
	return "", "", fmt.Errorf("unsupported dsn %q", dsn)
}

// DB is an open result store.
type DB struct {
	driver Driver
	pool   *pgxpool.Pool // postgres
	sqlDB  *sql.DB       // sqlite
	runs   RunRepository
}

// Open connects to the store named by dsn and applies pending migrations.
func Open(ctx context.Context, dsn string) (*DB, error) {
	driver, conn, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	var d *DB
	switch driver {
	case DriverPostgres:
		d, err = openPostgres(ctx, conn)
	case DriverSQLite:
		d, err = openSQLite(ctx, conn)
	}
	if err != nil {
		return nil, err
	}

	if err := d.Migrate(ctx); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func openPostgres(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{driver: DriverPostgres, pool: pool, runs: NewPostgresRunRepository(pool)}, nil
}

func openSQLite(ctx context.Context, path string) (*DB, error) {
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// a single writer avoids SQLITE_BUSY between concurrent runs
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &DB{driver: DriverSQLite, sqlDB: sqlDB, runs: NewSQLiteRunRepository(sqlDB)}, nil
}

// Driver reports the backend in use.
func (d *DB) Driver() Driver { return d.driver }

// Runs returns the run repository.
func (d *DB) Runs() RunRepository { return d.runs }

// Close releases the underlying connections.
func (d *DB) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
	if d.sqlDB != nil {
		_ = d.sqlDB.Close()
	}
}

// Fingerprint digests the canonical form of a run's inputs. Equal inputs
// give equal fingerprints.
func Fingerprint(canonical []byte) string {
	sum := blake2b.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
