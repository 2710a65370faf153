package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
	"github.com/jsamuelsen11/academic-catalog/internal/ports"
)

// Compile-time checks that Store satisfies the unit-of-work and health ports.
var (
	_ ports.UnitOfWork    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store owns a *sql.DB and hands out transaction-bound repositories.
type Store struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
}

// New wraps an open database. The caller has already applied migrations.
func New(db *sql.DB, dialect Dialect, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{db: db, dialect: dialect, logger: logger}
}

// DB returns the underlying handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns the backend description the store was built with.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Name returns the backend name, e.g. "sqlite".
func (s *Store) Name() string {
	return s.dialect.Name
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s unreachable: %w", s.dialect.Name, err)
	}
	return nil
}

// Do runs fn in one transaction. The transaction commits only if fn returns
// nil. Lock timeouts, deadlocks, and serialization failures raised anywhere
// in the transaction are returned as *domain.ConcurrencyError. A ctx marked
// with ports.ReadOnly opens a read-only transaction.
func (s *Store) Do(ctx context.Context, operation string, fn ports.TxFunc) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := s.dialect.TxOptions
	opts.ReadOnly = ports.IsReadOnly(ctx)

	start := time.Now()
	tx, err := s.db.BeginTx(ctx, &opts)
	if err != nil {
		return s.txError(operation, fmt.Errorf("begin transaction: %w", err))
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	repos := &repositories{
		faculties: &facultyRepository{q: tx, d: s.dialect},
		programs:  &programRepository{q: tx, d: s.dialect},
	}
	if err := fn(ctx, repos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.logger.WarnContext(ctx, "rollback failed",
				slog.String("operation", operation),
				slog.Any("error", rbErr),
			)
		}
		return s.txError(operation, err)
	}

	if err := tx.Commit(); err != nil {
		return s.txError(operation, fmt.Errorf("commit transaction: %w", err))
	}

	s.logger.DebugContext(ctx, "transaction committed",
		slog.String("operation", operation),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

func (s *Store) txError(operation string, err error) error {
	if s.dialect.classify(err) == ClassConflict {
		return &domain.ConcurrencyError{Op: operation, Err: err}
	}
	return err
}

// querier is the subset of *sql.Tx the repositories use.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type repositories struct {
	faculties *facultyRepository
	programs  *programRepository
}

func (r *repositories) Faculties() ports.FacultyRepository { return r.faculties }
func (r *repositories) Programs() ports.ProgramRepository  { return r.programs }

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
