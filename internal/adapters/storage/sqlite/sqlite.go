// Package sqlite opens the catalog store on an embedded SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/academic-catalog/internal/adapters/storage/sqlite/migrations"
	"github.com/jsamuelsen11/academic-catalog/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/academic-catalog/internal/platform/config"
)

// busyTimeoutMillis is how long a writer waits on a locked database before
// the driver reports SQLITE_BUSY.
const busyTimeoutMillis = 5000

// Dialect describes SQLite to sqlstore. Write transactions take the database
// lock at BEGIN (_txlock=immediate), so conflicting units of work queue on the
// busy timeout and surface as SQLITE_BUSY once it expires.
func Dialect() sqlstore.Dialect {
	return sqlstore.Dialect{
		Name:     config.DriverSQLite,
		Classify: classify,
	}
}

// Open opens (creating if needed) the database file at cfg.DSN, applies the
// embedded migrations, and returns a ready store.
func Open(ctx context.Context, cfg *config.StorageConfig, logger *slog.Logger) (*sqlstore.Store, error) {
	path := strings.TrimSpace(cfg.DSN)
	if path == "" {
		return nil, errors.New("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(cleanPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	d := Dialect()
	if err := sqlstore.Migrate(ctx, db, d, migrations.FS, ".", logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlstore.New(db, d, logger), nil
}

func dsn(path string) string {
	return fmt.Sprintf(
		"%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_txlock=immediate",
		path, busyTimeoutMillis,
	)
}

func classify(err error) sqlstore.ErrorClass {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return sqlstore.ClassOther
	}

	code := sqliteErr.Code()
	switch code {
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return sqlstore.ClassUnique
	case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3lib.SQLITE_CONSTRAINT_TRIGGER:
		// ON DELETE RESTRICT is enforced through an internal trigger and
		// reports SQLITE_CONSTRAINT_TRIGGER; the schema defines no triggers
		// of its own.
		return sqlstore.ClassForeignKey
	}
	switch code & 0xff {
	case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
		return sqlstore.ClassConflict
	}
	return sqlstore.ClassOther
}
