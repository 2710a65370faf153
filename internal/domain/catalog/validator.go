// Package catalog holds the rules that need both faculties and programs to
// decide: faculty existence and activity before a program is created or
// moved, and program counts before a faculty is deactivated or deleted.
//
// The Validator only reads. Callers run it and the dependent mutation inside
// one storage transaction so no concurrent change can slip between them.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/academic"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/faculty"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/program"
)

// FacultyFinder looks up faculties. FindByID returns a *domain.NotFoundError
// when the faculty does not exist.
type FacultyFinder interface {
	FindByID(ctx context.Context, id int64) (*faculty.Faculty, error)
}

// ProgramCounter answers the program-side questions the rules depend on.
type ProgramCounter interface {
	ExistsByName(ctx context.Context, name academic.Name) (bool, error)
	CountActiveByFaculty(ctx context.Context, facultyID int64) (int, error)
	CountByFaculty(ctx context.Context, facultyID int64) (int, error)
}

// Validator enforces referential and lifecycle rules across faculties and
// programs.
type Validator struct {
	faculties FacultyFinder
	programs  ProgramCounter
}

// NewValidator creates a Validator over the given repositories.
func NewValidator(faculties FacultyFinder, programs ProgramCounter) *Validator {
	return &Validator{faculties: faculties, programs: programs}
}

// ValidateProgramCreation checks, in order, that the faculty exists, that it
// is active, and that no program already uses name. The first failure is
// returned. Program names are unique system-wide, not per faculty.
func (v *Validator) ValidateProgramCreation(ctx context.Context, facultyID int64, name academic.Name) error {
	f, err := v.faculties.FindByID(ctx, facultyID)
	if err != nil {
		return err
	}
	if !f.IsActive() {
		return &domain.InvalidStateError{Kind: domain.StateFacultyInactive, Entity: domain.EntityFaculty, ID: facultyID}
	}

	exists, err := v.programs.ExistsByName(ctx, name)
	if err != nil {
		return fmt.Errorf("checking program name: %w", err)
	}
	if exists {
		return domain.NewValidationError(domain.KindDuplicateName, "name", "a program with this name already exists")
	}
	return nil
}

// CountActivePrograms returns the number of active programs under facultyID.
func (v *Validator) CountActivePrograms(ctx context.Context, facultyID int64) (int, error) {
	n, err := v.programs.CountActiveByFaculty(ctx, facultyID)
	if err != nil {
		return 0, fmt.Errorf("counting active programs: %w", err)
	}
	return n, nil
}

// CanDeactivateFaculty reports whether no active program references facultyID.
// Inactive programs do not block deactivation.
func (v *Validator) CanDeactivateFaculty(ctx context.Context, facultyID int64) (bool, error) {
	n, err := v.CountActivePrograms(ctx, facultyID)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// CanDeleteFaculty reports whether no program of any state references
// facultyID.
func (v *Validator) CanDeleteFaculty(ctx context.Context, facultyID int64) (bool, error) {
	n, err := v.programs.CountByFaculty(ctx, facultyID)
	if err != nil {
		return false, fmt.Errorf("counting programs: %w", err)
	}
	return n == 0, nil
}

// CanDeleteProgram reports whether p is inactive.
func (v *Validator) CanDeleteProgram(p *program.Program) bool {
	return !p.IsActive()
}

// CanChangeFacultyOf reports whether p may move to newFacultyID: the target
// faculty must exist and be active, and p itself must be inactive.
func (v *Validator) CanChangeFacultyOf(ctx context.Context, p *program.Program, newFacultyID int64) (bool, error) {
	err := v.EnsureFacultyChange(ctx, p, newFacultyID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrConflict):
		return false, nil
	default:
		return false, err
	}
}

// CanActivateProgram reports whether p's faculty exists and is active, so
// that activating p cannot leave an active program under an inactive faculty.
func (v *Validator) CanActivateProgram(ctx context.Context, p *program.Program) (bool, error) {
	err := v.EnsureProgramActivation(ctx, p)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrConflict):
		return false, nil
	default:
		return false, err
	}
}

// EnsureFacultyDeactivation returns an InvalidStateError of kind
// has_active_programs when CanDeactivateFaculty is false.
func (v *Validator) EnsureFacultyDeactivation(ctx context.Context, facultyID int64) error {
	ok, err := v.CanDeactivateFaculty(ctx, facultyID)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.InvalidStateError{Kind: domain.StateHasActivePrograms, Entity: domain.EntityFaculty, ID: facultyID}
	}
	return nil
}

// EnsureFacultyDeletion returns an InvalidStateError of kind has_programs
// when CanDeleteFaculty is false.
func (v *Validator) EnsureFacultyDeletion(ctx context.Context, facultyID int64) error {
	ok, err := v.CanDeleteFaculty(ctx, facultyID)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.InvalidStateError{Kind: domain.StateHasPrograms, Entity: domain.EntityFaculty, ID: facultyID}
	}
	return nil
}

// EnsureProgramDeletion returns an InvalidStateError of kind program_active
// when CanDeleteProgram is false.
func (v *Validator) EnsureProgramDeletion(p *program.Program) error {
	if !v.CanDeleteProgram(p) {
		return &domain.InvalidStateError{Kind: domain.StateProgramActive, Entity: domain.EntityProgram, ID: p.ID()}
	}
	return nil
}

// EnsureFacultyChange returns the reason p may not move to newFacultyID: a
// NotFoundError for an unknown faculty, faculty_inactive, or program_active.
func (v *Validator) EnsureFacultyChange(ctx context.Context, p *program.Program, newFacultyID int64) error {
	if err := v.ensureActiveFaculty(ctx, newFacultyID); err != nil {
		return err
	}
	if p.IsActive() {
		return &domain.InvalidStateError{Kind: domain.StateProgramActive, Entity: domain.EntityProgram, ID: p.ID()}
	}
	return nil
}

// EnsureProgramActivation returns a NotFoundError or faculty_inactive error
// when p's faculty cannot host an active program.
func (v *Validator) EnsureProgramActivation(ctx context.Context, p *program.Program) error {
	return v.ensureActiveFaculty(ctx, p.FacultyID())
}

func (v *Validator) ensureActiveFaculty(ctx context.Context, facultyID int64) error {
	f, err := v.faculties.FindByID(ctx, facultyID)
	if err != nil {
		return err
	}
	if !f.IsActive() {
		return &domain.InvalidStateError{Kind: domain.StateFacultyInactive, Entity: domain.EntityFaculty, ID: facultyID}
	}
	return nil
}
