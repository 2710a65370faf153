package ports

import (
	"context"

	"github.com/jsamuelsen11/academic-catalog/internal/domain/academic"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/faculty"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/program"
)

// FacultyRepository persists faculties. Implemented by storage adapters;
// every method runs within the transaction of the UnitOfWork that produced
// the repository.
type FacultyRepository interface {
	// Save inserts f when its ID is 0 and updates it otherwise. The returned
	// entity carries the storage-assigned ID.
	// Returns a duplicate_name ValidationError if the name is already taken.
	Save(ctx context.Context, f *faculty.Faculty) (*faculty.Faculty, error)

	// FindByID returns a *domain.NotFoundError if the faculty does not exist.
	FindByID(ctx context.Context, id int64) (*faculty.Faculty, error)

	// FindByName returns a *domain.NotFoundError if no faculty has name.
	FindByName(ctx context.Context, name academic.Name) (*faculty.Faculty, error)

	// FindByLocation returns faculties whose location matches, ignoring case.
	FindByLocation(ctx context.Context, location string) ([]*faculty.Faculty, error)

	FindAll(ctx context.Context) ([]*faculty.Faculty, error)
	FindAllActive(ctx context.Context) ([]*faculty.Faculty, error)

	ExistsByName(ctx context.Context, name academic.Name) (bool, error)

	// ExistsByNameExcludingID reports whether a faculty other than id uses name.
	ExistsByNameExcludingID(ctx context.Context, name academic.Name, id int64) (bool, error)

	// DeleteByID returns a *domain.NotFoundError if the faculty does not exist.
	DeleteByID(ctx context.Context, id int64) error
}

// ProgramRepository persists programs and answers the per-faculty aggregate
// queries used by catalog.Validator.
type ProgramRepository interface {
	// Save inserts p when its ID is 0 and updates it otherwise. The returned
	// entity carries the storage-assigned ID.
	// Returns a duplicate_name ValidationError if the name is already taken.
	Save(ctx context.Context, p *program.Program) (*program.Program, error)

	// FindByID returns a *domain.NotFoundError if the program does not exist.
	FindByID(ctx context.Context, id int64) (*program.Program, error)

	// FindByName returns a *domain.NotFoundError if no program has name.
	FindByName(ctx context.Context, name academic.Name) (*program.Program, error)

	FindAll(ctx context.Context) ([]*program.Program, error)
	FindAllActive(ctx context.Context) ([]*program.Program, error)
	FindByFacultyID(ctx context.Context, facultyID int64) ([]*program.Program, error)
	FindActiveByFacultyID(ctx context.Context, facultyID int64) ([]*program.Program, error)

	// FindByDurationRange returns programs lasting between minSemesters and
	// maxSemesters inclusive.
	FindByDurationRange(ctx context.Context, minSemesters, maxSemesters int) ([]*program.Program, error)

	// FindByDegreeTitleContaining matches fragment anywhere in the degree
	// title, ignoring case.
	FindByDegreeTitleContaining(ctx context.Context, fragment string) ([]*program.Program, error)

	ExistsByName(ctx context.Context, name academic.Name) (bool, error)

	// ExistsByNameExcludingID reports whether a program other than id uses name.
	ExistsByNameExcludingID(ctx context.Context, name academic.Name, id int64) (bool, error)

	CountActiveByFaculty(ctx context.Context, facultyID int64) (int, error)
	CountByFaculty(ctx context.Context, facultyID int64) (int, error)

	// DeleteByID returns a *domain.NotFoundError if the program does not exist.
	DeleteByID(ctx context.Context, id int64) error
}

// Repositories exposes the repositories bound to one transaction.
type Repositories interface {
	Faculties() FacultyRepository
	Programs() ProgramRepository
}

// TxFunc is the body of a unit of work. Returning an error rolls back.
type TxFunc func(ctx context.Context, repos Repositories) error

// UnitOfWork runs fn inside one atomic storage transaction. A conflict
// detected by storage is returned as a *domain.ConcurrencyError; operation
// names the use case for logs, traces, and metrics.
type UnitOfWork interface {
	Do(ctx context.Context, operation string, fn TxFunc) error
}

type readOnlyKey struct{}

// ReadOnly marks ctx so that a UnitOfWork started with it opens a read-only
// transaction. Query-only use cases use it so that they do not queue behind
// writers for the database lock.
func ReadOnly(ctx context.Context) context.Context {
	return context.WithValue(ctx, readOnlyKey{}, true)
}

// IsReadOnly reports whether ctx was marked by ReadOnly.
func IsReadOnly(ctx context.Context) bool {
	ro, _ := ctx.Value(readOnlyKey{}).(bool)
	return ro
}
