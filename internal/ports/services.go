package ports

import (
	"context"

	"github.com/jsamuelsen11/academic-catalog/internal/domain/academic"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/faculty"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/program"
)

// FacultyView is a faculty together with the number of its active programs.
type FacultyView struct {
	Faculty        *faculty.Faculty
	ActivePrograms int
}

// ProgramView is a program together with the name of its faculty.
type ProgramView struct {
	Program     *program.Program
	FacultyName string
}

// RegisterFaculty carries the raw input for a new faculty.
type RegisterFaculty struct {
	Name        string
	Description string
	Location    string
	Dean        string
}

// UpdateFaculty carries the replacement descriptive fields of a faculty.
type UpdateFaculty struct {
	Name        string
	Description string
	Location    string
}

// FacultyFilter narrows ListFaculties. The zero value lists every faculty.
type FacultyFilter struct {
	ActiveOnly bool
	Location   string
}

// RegisterProgram carries the raw input for a new program.
type RegisterProgram struct {
	FacultyID   int64
	Name        string
	Description string
	Semesters   int
	DegreeTitle string
}

// UpdateProgram carries the replacement academic fields of a program.
type UpdateProgram struct {
	Name        string
	Description string
	Semesters   int
	DegreeTitle string
}

// ProgramFilter narrows ListPrograms. All set fields apply together: the
// classification range is intersected with the semester bounds, and
// TitleContains matches case-insensitively. Zero semester bounds mean
// unbounded.
type ProgramFilter struct {
	ActiveOnly     bool
	Classification academic.Classification
	MinSemesters   int
	MaxSemesters   int
	TitleContains  string
}

// FacultyService defines the service port for faculty use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
type FacultyService interface {
	// RegisterFaculty creates an active faculty.
	// Returns domain.ErrValidation for malformed input or a duplicate name.
	RegisterFaculty(ctx context.Context, cmd RegisterFaculty) (*FacultyView, error)

	// GetFaculty returns domain.ErrNotFound if the faculty does not exist.
	GetFaculty(ctx context.Context, id int64) (*FacultyView, error)

	// FindFacultyByName normalizes name before looking it up.
	FindFacultyByName(ctx context.Context, name string) (*FacultyView, error)

	ListFaculties(ctx context.Context, filter FacultyFilter) ([]FacultyView, error)

	// UpdateFaculty replaces name, description, and location.
	// Returns domain.ErrValidation if another faculty already uses the name.
	UpdateFaculty(ctx context.Context, id int64, cmd UpdateFaculty) (*FacultyView, error)

	ChangeDean(ctx context.Context, id int64, dean string) (*FacultyView, error)

	ActivateFaculty(ctx context.Context, id int64) (*FacultyView, error)

	// DeactivateFaculty returns domain.ErrConflict (has_active_programs) while
	// any active program references the faculty.
	DeactivateFaculty(ctx context.Context, id int64) (*FacultyView, error)

	// DeleteFaculty returns domain.ErrConflict (has_programs) while any
	// program references the faculty, and (faculty_active) while it is active.
	DeleteFaculty(ctx context.Context, id int64) error
}

// ProgramService defines the service port for program use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
type ProgramService interface {
	// RegisterProgram returns domain.ErrNotFound for an unknown faculty,
	// domain.ErrConflict (faculty_inactive) for an inactive one, and
	// domain.ErrValidation for malformed input or a duplicate name.
	RegisterProgram(ctx context.Context, cmd RegisterProgram) (*ProgramView, error)

	GetProgram(ctx context.Context, id int64) (*ProgramView, error)

	ListPrograms(ctx context.Context, filter ProgramFilter) ([]ProgramView, error)

	// ListFacultyPrograms returns domain.ErrNotFound if the faculty does not exist.
	ListFacultyPrograms(ctx context.Context, facultyID int64, activeOnly bool) ([]ProgramView, error)

	UpdateProgram(ctx context.Context, id int64, cmd UpdateProgram) (*ProgramView, error)

	// ChangeDuration returns domain.ErrValidation (same_duration) when the
	// duration does not change.
	ChangeDuration(ctx context.Context, id int64, semesters int) (*ProgramView, error)

	// ChangeFaculty moves an inactive program to another active faculty.
	ChangeFaculty(ctx context.Context, id, facultyID int64) (*ProgramView, error)

	// ActivateProgram returns domain.ErrConflict (faculty_inactive) when the
	// program's faculty is inactive.
	ActivateProgram(ctx context.Context, id int64) (*ProgramView, error)

	DeactivateProgram(ctx context.Context, id int64) (*ProgramView, error)

	// DeleteProgram returns domain.ErrConflict (program_active) unless the
	// program is inactive.
	DeleteProgram(ctx context.Context, id int64) error
}
