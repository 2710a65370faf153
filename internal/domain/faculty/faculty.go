// Package faculty defines the Faculty entity: an organizational unit that
// owns zero or more programs and carries an active/inactive lifecycle.
package faculty

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/academic"
)

// DeanMaxLength is the longest dean name accepted, in characters.
const DeanMaxLength = 100

// Faculty is mutated only through its methods so that every invariant is
// re-checked on each change. A Faculty built by New has ID 0 until storage
// assigns one.
type Faculty struct {
	id           int64
	name         academic.Name
	description  string
	location     string
	dean         string
	registeredAt time.Time
	active       bool
}

// New creates an active Faculty registered now.
func New(name academic.Name, description, location, dean string) (*Faculty, error) {
	f := &Faculty{
		registeredAt: time.Now().UTC(),
		active:       true,
	}
	if err := f.UpdateInfo(name, description, location); err != nil {
		return nil, err
	}
	if err := f.ChangeDean(dean); err != nil {
		return nil, err
	}
	return f, nil
}

// Snapshot is the flat persistence form of a Faculty.
type Snapshot struct {
	ID           int64
	Name         string
	Description  string
	Location     string
	Dean         string
	RegisteredAt time.Time
	Active       bool
}

// FromSnapshot rebuilds a Faculty loaded from storage, re-validating the
// name and dean.
func FromSnapshot(s Snapshot) (*Faculty, error) {
	name, err := academic.NewName(s.Name)
	if err != nil {
		return nil, err
	}
	f := &Faculty{
		id:           s.ID,
		registeredAt: s.RegisteredAt,
		active:       s.Active,
	}
	if err := f.UpdateInfo(name, s.Description, s.Location); err != nil {
		return nil, err
	}
	if err := f.ChangeDean(s.Dean); err != nil {
		return nil, err
	}
	return f, nil
}

// Snapshot returns the flat persistence form of f.
func (f *Faculty) Snapshot() Snapshot {
	return Snapshot{
		ID:           f.id,
		Name:         f.name.String(),
		Description:  f.description,
		Location:     f.location,
		Dean:         f.dean,
		RegisteredAt: f.registeredAt,
		Active:       f.active,
	}
}

func (f *Faculty) ID() int64               { return f.id }
func (f *Faculty) Name() academic.Name     { return f.name }
func (f *Faculty) Description() string     { return f.description }
func (f *Faculty) Location() string        { return f.location }
func (f *Faculty) Dean() string            { return f.dean }
func (f *Faculty) RegisteredAt() time.Time { return f.registeredAt }
func (f *Faculty) IsActive() bool          { return f.active }

// Initials returns the initials of the faculty name.
func (f *Faculty) Initials() string {
	return f.name.Initials()
}

// UpdateInfo replaces the name, description, and location. Description and
// location are trimmed; either may be empty.
func (f *Faculty) UpdateInfo(name academic.Name, description, location string) error {
	if name.IsZero() {
		return domain.NewValidationError(domain.KindBlank, "name", "must not be blank")
	}
	f.name = name
	f.description = strings.TrimSpace(description)
	f.location = strings.TrimSpace(location)
	return nil
}

// ChangeDean trims and stores dean. Fails with kind blank_dean when dean is
// blank and too_long when it exceeds DeanMaxLength.
func (f *Faculty) ChangeDean(dean string) error {
	trimmed := strings.TrimSpace(dean)
	if trimmed == "" {
		return domain.NewValidationError(domain.KindBlankDean, "dean", "must not be blank")
	}
	if utf8.RuneCountInString(trimmed) > DeanMaxLength {
		return domain.NewValidationError(domain.KindTooLong, "dean", "must be at most 100 characters")
	}
	f.dean = trimmed
	return nil
}

// Activate moves an inactive faculty to active.
func (f *Faculty) Activate() error {
	if f.active {
		return &domain.InvalidStateError{Kind: domain.StateAlreadyActive, Entity: domain.EntityFaculty, ID: f.id}
	}
	f.active = true
	return nil
}

// Deactivate moves an active faculty to inactive. Program counts are not
// checked here; see catalog.Validator.
func (f *Faculty) Deactivate() error {
	if !f.active {
		return &domain.InvalidStateError{Kind: domain.StateAlreadyInactive, Entity: domain.EntityFaculty, ID: f.id}
	}
	f.active = false
	return nil
}
