package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/academic"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/faculty"
)

const facultyColumns = `id, name, description, location, dean, registered_at, active`

type facultyRepository struct {
	q querier
	d Dialect
}

func (r *facultyRepository) Save(ctx context.Context, f *faculty.Faculty) (*faculty.Faculty, error) {
	s := f.Snapshot()
	s.RegisteredAt = fromMillis(toMillis(s.RegisteredAt))

	if s.ID == 0 {
		err := r.q.QueryRowContext(ctx, r.d.Rebind(
			`INSERT INTO faculties (name, description, location, location_key, dean, registered_at, active)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 RETURNING id`),
			s.Name, s.Description, s.Location, foldKey(s.Location), s.Dean, toMillis(s.RegisteredAt), s.Active,
		).Scan(&s.ID)
		if err != nil {
			return nil, r.writeError(err)
		}
		return faculty.FromSnapshot(s)
	}

	res, err := r.q.ExecContext(ctx, r.d.Rebind(
		`UPDATE faculties
		 SET name = ?, description = ?, location = ?, location_key = ?, dean = ?, active = ?
		 WHERE id = ?`),
		s.Name, s.Description, s.Location, foldKey(s.Location), s.Dean, s.Active, s.ID,
	)
	if err != nil {
		return nil, r.writeError(err)
	}
	if err := requireRow(res, domain.EntityFaculty, s.ID); err != nil {
		return nil, err
	}
	return faculty.FromSnapshot(s)
}

func (r *facultyRepository) FindByID(ctx context.Context, id int64) (*faculty.Faculty, error) {
	row := r.q.QueryRowContext(ctx, r.d.Rebind(`SELECT `+facultyColumns+` FROM faculties WHERE id = ?`), id)
	f, err := scanFaculty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.EntityFaculty, id)
	}
	return f, err
}

func (r *facultyRepository) FindByName(ctx context.Context, name academic.Name) (*faculty.Faculty, error) {
	row := r.q.QueryRowContext(ctx, r.d.Rebind(`SELECT `+facultyColumns+` FROM faculties WHERE name = ?`), name.String())
	f, err := scanFaculty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: domain.EntityFaculty, Key: name.String()}
	}
	return f, err
}

func (r *facultyRepository) FindByLocation(ctx context.Context, location string) ([]*faculty.Faculty, error) {
	return r.list(ctx, `WHERE location_key = ?`, foldKey(location))
}

func (r *facultyRepository) FindAll(ctx context.Context) ([]*faculty.Faculty, error) {
	return r.list(ctx, ``)
}

func (r *facultyRepository) FindAllActive(ctx context.Context) ([]*faculty.Faculty, error) {
	return r.list(ctx, `WHERE active = ?`, true)
}

func (r *facultyRepository) ExistsByName(ctx context.Context, name academic.Name) (bool, error) {
	return exists(ctx, r.q, r.d.Rebind(`SELECT EXISTS (SELECT 1 FROM faculties WHERE name = ?)`), name.String())
}

func (r *facultyRepository) ExistsByNameExcludingID(ctx context.Context, name academic.Name, id int64) (bool, error) {
	return exists(ctx, r.q, r.d.Rebind(`SELECT EXISTS (SELECT 1 FROM faculties WHERE name = ? AND id <> ?)`), name.String(), id)
}

func (r *facultyRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, r.d.Rebind(`DELETE FROM faculties WHERE id = ?`), id)
	if err != nil {
		if r.d.classify(err) == ClassForeignKey {
			return &domain.InvalidStateError{Kind: domain.StateHasPrograms, Entity: domain.EntityFaculty, ID: id}
		}
		return fmt.Errorf("deleting faculty %d: %w", id, err)
	}
	return requireRow(res, domain.EntityFaculty, id)
}

func (r *facultyRepository) list(ctx context.Context, where string, args ...any) ([]*faculty.Faculty, error) {
	rows, err := r.q.QueryContext(ctx, r.d.Rebind(`SELECT `+facultyColumns+` FROM faculties `+where+` ORDER BY id`), args...)
	if err != nil {
		return nil, fmt.Errorf("querying faculties: %w", err)
	}
	defer rows.Close()

	var out []*faculty.Faculty
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating faculties: %w", err)
	}
	return out, nil
}

func (r *facultyRepository) writeError(err error) error {
	if r.d.classify(err) == ClassUnique {
		return domain.NewValidationError(domain.KindDuplicateName, "name", "a faculty with this name already exists")
	}
	return fmt.Errorf("writing faculty: %w", err)
}

func scanFaculty(row scanner) (*faculty.Faculty, error) {
	var (
		s            faculty.Snapshot
		registeredAt int64
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Location, &s.Dean, &registeredAt, &s.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning faculty: %w", err)
	}
	s.RegisteredAt = fromMillis(registeredAt)

	f, err := faculty.FromSnapshot(s)
	if err != nil {
		return nil, fmt.Errorf("decoding faculty %d: %w", s.ID, err)
	}
	return f, nil
}

// foldKey is the case-insensitive lookup form of a free-text column.
func foldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func exists(ctx context.Context, q querier, query string, args ...any) (bool, error) {
	var found bool
	if err := q.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("checking existence: %w", err)
	}
	return found, nil
}

func requireRow(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return domain.NewNotFoundError(entity, id)
	}
	return nil
}
