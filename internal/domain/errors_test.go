package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{
		Kind: KindBlank,
		Fields: map[string]string{
			"name": "must not be blank",
			"dean": "must not be blank",
		},
	}

	want := "validation error: dean: must not be blank; name: must not be blank"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTypedErrors_Unwrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "validation",
			err:      NewValidationError(KindTooShort, "name", "too short"),
			sentinel: ErrValidation,
		},
		{
			name:     "not found",
			err:      NewNotFoundError(EntityFaculty, 7),
			sentinel: ErrNotFound,
		},
		{
			name:     "invalid state",
			err:      &InvalidStateError{Kind: StateAlreadyActive, Entity: EntityProgram, ID: 3},
			sentinel: ErrConflict,
		},
		{
			name:     "concurrency",
			err:      &ConcurrencyError{Op: "DeactivateFaculty"},
			sentinel: ErrConcurrency,
		},
		{
			name:     "wrapped validation",
			err:      fmt.Errorf("registering faculty: %w", NewValidationError(KindBlank, "name", "blank")),
			sentinel: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestConcurrencyError_KeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("database is locked")
	err := &ConcurrencyError{Op: "ActivateProgram", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if !errors.Is(err, ErrConcurrency) {
		t.Error("errors.Is(err, ErrConcurrency) = false, want true")
	}
}

func TestNotFoundError_Error(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError(EntityFaculty, 42)
	if got, want := err.Error(), "faculty 42 not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestInvalidStateError_Error(t *testing.T) {
	t.Parallel()

	err := &InvalidStateError{Kind: StateHasActivePrograms, Entity: EntityFaculty, ID: 1}
	if got, want := err.Error(), "conflict: faculty 1 has active programs"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKindHelpers(t *testing.T) {
	t.Parallel()

	verr := fmt.Errorf("ctx: %w", NewValidationError(KindDuplicateName, "name", "already exists"))
	if !IsValidationKind(verr, KindDuplicateName) {
		t.Error("IsValidationKind(duplicate_name) = false, want true")
	}
	if IsValidationKind(verr, KindBlank) {
		t.Error("IsValidationKind(blank) = true, want false")
	}

	serr := fmt.Errorf("ctx: %w", &InvalidStateError{Kind: StateHasPrograms, Entity: EntityFaculty, ID: 2})
	if !IsStateKind(serr, StateHasPrograms) {
		t.Error("IsStateKind(has_programs) = false, want true")
	}
	if IsStateKind(verr, StateHasPrograms) {
		t.Error("IsStateKind on validation error = true, want false")
	}
}
