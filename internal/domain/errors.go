package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrConcurrency = errors.New("concurrent modification")
	ErrUnavailable = errors.New("unavailable")
)

// Entity names used in NotFoundError and InvalidStateError.
const (
	EntityFaculty = "faculty"
	EntityProgram = "program"
)

// ValidationKind classifies a ValidationError.
type ValidationKind string

// Validation kinds.
const (
	KindBlank           ValidationKind = "blank"
	KindTooShort        ValidationKind = "too_short"
	KindTooLong         ValidationKind = "too_long"
	KindInvalidDuration ValidationKind = "invalid_duration"
	KindDuplicateName   ValidationKind = "duplicate_name"
	KindSameDuration    ValidationKind = "same_duration"
	KindInvalidTitle    ValidationKind = "invalid_title"
	KindBlankDean       ValidationKind = "blank_dean"
	KindMalformed       ValidationKind = "malformed"
)

// ValidationError reports malformed input to a value object, an entity
// mutator, or an inbound request. Use errors.Is(err, ErrValidation) for simple
// checks, or errors.As(err, &verr) to read the kind and per-field messages.
type ValidationError struct {
	Kind   ValidationKind
	Fields map[string]string
}

// NewValidationError builds a single-field ValidationError.
func NewValidationError(kind ValidationKind, field, msg string) *ValidationError {
	return &ValidationError{
		Kind:   kind,
		Fields: map[string]string{field: msg},
	}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError reports that a referenced entity does not exist. Key is the
// identifier or unique name that was looked up.
type NotFoundError struct {
	Entity string
	Key    string
}

// NewNotFoundError builds a NotFoundError for a numeric identifier.
func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: fmt.Sprintf("%d", id)}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s %s", e.Entity, e.Key, ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// StateKind classifies an InvalidStateError.
type StateKind string

// Invalid state kinds.
const (
	StateAlreadyActive     StateKind = "already_active"
	StateAlreadyInactive   StateKind = "already_inactive"
	StateFacultyInactive   StateKind = "faculty_inactive"
	StateHasActivePrograms StateKind = "has_active_programs"
	StateHasPrograms       StateKind = "has_programs"
	StateFacultyActive     StateKind = "faculty_active"
	StateProgramActive     StateKind = "program_active"
)

var stateMessages = map[StateKind]string{
	StateAlreadyActive:     "is already active",
	StateAlreadyInactive:   "is already inactive",
	StateFacultyInactive:   "is inactive",
	StateHasActivePrograms: "has active programs",
	StateHasPrograms:       "has programs",
	StateFacultyActive:     "must be deactivated first",
	StateProgramActive:     "must be deactivated first",
}

// InvalidStateError reports an illegal lifecycle transition or a violated
// cross-entity constraint. It unwraps to ErrConflict.
type InvalidStateError struct {
	Kind   StateKind
	Entity string
	ID     int64
}

func (e *InvalidStateError) Error() string {
	msg, ok := stateMessages[e.Kind]
	if !ok {
		msg = string(e.Kind)
	}
	return fmt.Sprintf("%s: %s %d %s", ErrConflict.Error(), e.Entity, e.ID, msg)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrConflict
}

// ConcurrencyError reports a race between a check and the mutation that
// depended on it. The caller decides whether to retry.
type ConcurrencyError struct {
	Op  string
	Err error
}

func (e *ConcurrencyError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, ErrConcurrency.Error())
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrConcurrency.Error(), e.Err)
}

func (e *ConcurrencyError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConcurrency}
	}
	return []error{ErrConcurrency, e.Err}
}

// IsValidationKind reports whether err carries a ValidationError of the given kind.
func IsValidationKind(err error, kind ValidationKind) bool {
	var verr *ValidationError
	return errors.As(err, &verr) && verr.Kind == kind
}

// IsStateKind reports whether err carries an InvalidStateError of the given kind.
func IsStateKind(err error, kind StateKind) bool {
	var serr *InvalidStateError
	return errors.As(err, &serr) && serr.Kind == kind
}
