// Package postgres opens the catalog store on PostgreSQL through the pgx
// database/sql driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver

	"github.com/jsamuelsen11/academic-catalog/internal/adapters/storage/postgres/migrations"
	"github.com/jsamuelsen11/academic-catalog/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/academic-catalog/internal/platform/config"
)

// SQLSTATE codes the store reacts to.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// Dialect describes PostgreSQL to sqlstore. Units of work run SERIALIZABLE,
// so a check-then-write that races another transaction aborts with 40001
// instead of committing a stale decision.
func Dialect() sqlstore.Dialect {
	return sqlstore.Dialect{
		Name:           config.DriverPostgres,
		NumberedParams: true,
		TxOptions:      sql.TxOptions{Isolation: sql.LevelSerializable},
		Classify:       classify,
	}
}

// Open connects to cfg.DSN, applies the embedded migrations, and returns a
// ready store.
func Open(ctx context.Context, cfg *config.StorageConfig, logger *slog.Logger) (*sqlstore.Store, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, errors.New("storage dsn is required")
	}

	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	d := Dialect()
	if err := sqlstore.Migrate(ctx, db, d, migrations.FS, ".", logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlstore.New(db, d, logger), nil
}

func classify(err error) sqlstore.ErrorClass {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return sqlstore.ClassOther
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return sqlstore.ClassUnique
	case codeForeignKeyViolation:
		return sqlstore.ClassForeignKey
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return sqlstore.ClassConflict
	default:
		return sqlstore.ClassOther
	}
}
