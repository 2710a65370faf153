package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/academic"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/program"
)

const programColumns = `id, faculty_id, name, description, semesters, degree_title, registered_at, active`

type programRepository struct {
	q querier
	d Dialect
}

func (r *programRepository) Save(ctx context.Context, p *program.Program) (*program.Program, error) {
	s := p.Snapshot()
	s.RegisteredAt = fromMillis(toMillis(s.RegisteredAt))

	if s.ID == 0 {
		err := r.q.QueryRowContext(ctx, r.d.Rebind(
			`INSERT INTO programs (faculty_id, name, description, semesters, degree_title, degree_title_key, registered_at, active)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			 RETURNING id`),
			s.FacultyID, s.Name, s.Description, s.Semesters, s.DegreeTitle, foldKey(s.DegreeTitle), toMillis(s.RegisteredAt), s.Active,
		).Scan(&s.ID)
		if err != nil {
			return nil, r.writeError(err, s.FacultyID)
		}
		return program.FromSnapshot(s)
	}

	res, err := r.q.ExecContext(ctx, r.d.Rebind(
		`UPDATE programs
		 SET faculty_id = ?, name = ?, description = ?, semesters = ?, degree_title = ?, degree_title_key = ?, active = ?
		 WHERE id = ?`),
		s.FacultyID, s.Name, s.Description, s.Semesters, s.DegreeTitle, foldKey(s.DegreeTitle), s.Active, s.ID,
	)
	if err != nil {
		return nil, r.writeError(err, s.FacultyID)
	}
	if err := requireRow(res, domain.EntityProgram, s.ID); err != nil {
		return nil, err
	}
	return program.FromSnapshot(s)
}

func (r *programRepository) FindByID(ctx context.Context, id int64) (*program.Program, error) {
	row := r.q.QueryRowContext(ctx, r.d.Rebind(`SELECT `+programColumns+` FROM programs WHERE id = ?`), id)
	p, err := scanProgram(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.EntityProgram, id)
	}
	return p, err
}

func (r *programRepository) FindByName(ctx context.Context, name academic.Name) (*program.Program, error) {
	row := r.q.QueryRowContext(ctx, r.d.Rebind(`SELECT `+programColumns+` FROM programs WHERE name = ?`), name.String())
	p, err := scanProgram(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: domain.EntityProgram, Key: name.String()}
	}
	return p, err
}

func (r *programRepository) FindAll(ctx context.Context) ([]*program.Program, error) {
	return r.list(ctx, ``)
}

func (r *programRepository) FindAllActive(ctx context.Context) ([]*program.Program, error) {
	return r.list(ctx, `WHERE active = ?`, true)
}

func (r *programRepository) FindByFacultyID(ctx context.Context, facultyID int64) ([]*program.Program, error) {
	return r.list(ctx, `WHERE faculty_id = ?`, facultyID)
}

func (r *programRepository) FindActiveByFacultyID(ctx context.Context, facultyID int64) ([]*program.Program, error) {
	return r.list(ctx, `WHERE faculty_id = ? AND active = ?`, facultyID, true)
}

func (r *programRepository) FindByDurationRange(ctx context.Context, minSemesters, maxSemesters int) ([]*program.Program, error) {
	return r.list(ctx, `WHERE semesters BETWEEN ? AND ?`, minSemesters, maxSemesters)
}

func (r *programRepository) FindByDegreeTitleContaining(ctx context.Context, fragment string) ([]*program.Program, error) {
	return r.list(ctx, `WHERE degree_title_key LIKE ? ESCAPE '\'`, "%"+escapeLike(foldKey(fragment))+"%")
}

func (r *programRepository) ExistsByName(ctx context.Context, name academic.Name) (bool, error) {
	return exists(ctx, r.q, r.d.Rebind(`SELECT EXISTS (SELECT 1 FROM programs WHERE name = ?)`), name.String())
}

func (r *programRepository) ExistsByNameExcludingID(ctx context.Context, name academic.Name, id int64) (bool, error) {
	return exists(ctx, r.q, r.d.Rebind(`SELECT EXISTS (SELECT 1 FROM programs WHERE name = ? AND id <> ?)`), name.String(), id)
}

func (r *programRepository) CountActiveByFaculty(ctx context.Context, facultyID int64) (int, error) {
	return r.count(ctx, `WHERE faculty_id = ? AND active = ?`, facultyID, true)
}

func (r *programRepository) CountByFaculty(ctx context.Context, facultyID int64) (int, error) {
	return r.count(ctx, `WHERE faculty_id = ?`, facultyID)
}

func (r *programRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, r.d.Rebind(`DELETE FROM programs WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("deleting program %d: %w", id, err)
	}
	return requireRow(res, domain.EntityProgram, id)
}

func (r *programRepository) list(ctx context.Context, where string, args ...any) ([]*program.Program, error) {
	rows, err := r.q.QueryContext(ctx, r.d.Rebind(`SELECT `+programColumns+` FROM programs `+where+` ORDER BY id`), args...)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var out []*program.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating programs: %w", err)
	}
	return out, nil
}

func (r *programRepository) count(ctx context.Context, where string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, r.d.Rebind(`SELECT COUNT(*) FROM programs `+where), args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting programs: %w", err)
	}
	return n, nil
}

func (r *programRepository) writeError(err error, facultyID int64) error {
	switch r.d.classify(err) {
	case ClassUnique:
		return domain.NewValidationError(domain.KindDuplicateName, "name", "a program with this name already exists")
	case ClassForeignKey:
		return domain.NewNotFoundError(domain.EntityFaculty, facultyID)
	default:
		return fmt.Errorf("writing program: %w", err)
	}
}

func scanProgram(row scanner) (*program.Program, error) {
	var (
		s            program.Snapshot
		registeredAt int64
	)
	err := row.Scan(&s.ID, &s.FacultyID, &s.Name, &s.Description, &s.Semesters, &s.DegreeTitle, &registeredAt, &s.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning program: %w", err)
	}
	s.RegisteredAt = fromMillis(registeredAt)

	p, err := program.FromSnapshot(s)
	if err != nil {
		return nil, fmt.Errorf("decoding program %d: %w", s.ID, err)
	}
	return p, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
