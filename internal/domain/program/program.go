// Package program defines the Program entity: an academic offering that
// belongs to exactly one faculty, referenced by identifier only.
package program

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/academic"
)

// Field limits, in characters.
const (
	DescriptionMaxLength = 500
	TitleMinLength       = 5
	TitleMaxLength       = 100
)

// Program is mutated only through its methods. A Program built by New has
// ID 0 until storage assigns one.
type Program struct {
	id           int64
	facultyID    int64
	name         academic.Name
	description  string
	duration     academic.Duration
	degreeTitle  string
	registeredAt time.Time
	active       bool
}

// New creates an active Program registered now under facultyID. The caller
// is expected to have run catalog.Validator.ValidateProgramCreation first.
func New(
	facultyID int64,
	name academic.Name,
	description string,
	duration academic.Duration,
	degreeTitle string,
) (*Program, error) {
	p := &Program{
		facultyID:    facultyID,
		registeredAt: time.Now().UTC(),
		active:       true,
	}
	if err := p.UpdateAcademicInfo(name, description, duration, degreeTitle); err != nil {
		return nil, err
	}
	return p, nil
}

// Snapshot is the flat persistence form of a Program.
type Snapshot struct {
	ID           int64
	FacultyID    int64
	Name         string
	Description  string
	Semesters    int
	DegreeTitle  string
	RegisteredAt time.Time
	Active       bool
}

// FromSnapshot rebuilds a Program loaded from storage, re-validating every
// field.
func FromSnapshot(s Snapshot) (*Program, error) {
	name, err := academic.NewName(s.Name)
	if err != nil {
		return nil, err
	}
	duration, err := academic.NewDuration(s.Semesters)
	if err != nil {
		return nil, err
	}
	p := &Program{
		id:           s.ID,
		facultyID:    s.FacultyID,
		registeredAt: s.RegisteredAt,
		active:       s.Active,
	}
	if err := p.UpdateAcademicInfo(name, s.Description, duration, s.DegreeTitle); err != nil {
		return nil, err
	}
	return p, nil
}

// Snapshot returns the flat persistence form of p.
func (p *Program) Snapshot() Snapshot {
	return Snapshot{
		ID:           p.id,
		FacultyID:    p.facultyID,
		Name:         p.name.String(),
		Description:  p.description,
		Semesters:    p.duration.Semesters(),
		DegreeTitle:  p.degreeTitle,
		RegisteredAt: p.registeredAt,
		Active:       p.active,
	}
}

func (p *Program) ID() int64                   { return p.id }
func (p *Program) FacultyID() int64            { return p.facultyID }
func (p *Program) Name() academic.Name         { return p.name }
func (p *Program) Description() string         { return p.description }
func (p *Program) Duration() academic.Duration { return p.duration }
func (p *Program) DegreeTitle() string         { return p.degreeTitle }
func (p *Program) RegisteredAt() time.Time     { return p.registeredAt }
func (p *Program) IsActive() bool              { return p.active }

func (p *Program) IsShort() bool    { return p.duration.IsShort() }
func (p *Program) IsStandard() bool { return p.duration.IsStandard() }
func (p *Program) IsLong() bool     { return p.duration.IsLong() }

// YearsLength returns the program length in years, rounded up.
func (p *Program) YearsLength() int {
	return p.duration.Years()
}

// BelongsToFaculty reports whether p references facultyID.
func (p *Program) BelongsToFaculty(facultyID int64) bool {
	return p.facultyID == facultyID
}

// UpdateAcademicInfo replaces name, description, duration, and degree title.
// Every field is validated before any is stored, so a failure leaves p
// unchanged.
func (p *Program) UpdateAcademicInfo(
	name academic.Name,
	description string,
	duration academic.Duration,
	degreeTitle string,
) error {
	if name.IsZero() {
		return domain.NewValidationError(domain.KindBlank, "name", "must not be blank")
	}
	desc, err := checkDescription(description)
	if err != nil {
		return err
	}
	if duration.IsZero() {
		return domain.NewValidationError(domain.KindInvalidDuration, "semesters", "is required")
	}
	title, err := checkTitle(degreeTitle)
	if err != nil {
		return err
	}

	p.name = name
	p.description = desc
	p.duration = duration
	p.degreeTitle = title
	return nil
}

// ChangeDuration fails with kind same_duration when d equals the current
// duration.
func (p *Program) ChangeDuration(d academic.Duration) error {
	if d.IsZero() {
		return domain.NewValidationError(domain.KindInvalidDuration, "semesters", "is required")
	}
	if d.Equal(p.duration) {
		return domain.NewValidationError(domain.KindSameDuration, "semesters", "must differ from the current duration")
	}
	p.duration = d
	return nil
}

// UpdateDegreeTitle replaces the degree title.
func (p *Program) UpdateDegreeTitle(title string) error {
	t, err := checkTitle(title)
	if err != nil {
		return err
	}
	p.degreeTitle = t
	return nil
}

// MoveToFaculty reassigns p to facultyID. Only inactive programs may move;
// whether the target faculty accepts it is decided by catalog.Validator.
func (p *Program) MoveToFaculty(facultyID int64) error {
	if p.active {
		return &domain.InvalidStateError{Kind: domain.StateProgramActive, Entity: domain.EntityProgram, ID: p.id}
	}
	p.facultyID = facultyID
	return nil
}

// Activate moves an inactive program to active.
func (p *Program) Activate() error {
	if p.active {
		return &domain.InvalidStateError{Kind: domain.StateAlreadyActive, Entity: domain.EntityProgram, ID: p.id}
	}
	p.active = true
	return nil
}

// Deactivate moves an active program to inactive.
func (p *Program) Deactivate() error {
	if !p.active {
		return &domain.InvalidStateError{Kind: domain.StateAlreadyInactive, Entity: domain.EntityProgram, ID: p.id}
	}
	p.active = false
	return nil
}

func checkDescription(description string) (string, error) {
	d := strings.TrimSpace(description)
	if utf8.RuneCountInString(d) > DescriptionMaxLength {
		return "", domain.NewValidationError(domain.KindTooLong, "description", "must be at most 500 characters")
	}
	return d, nil
}

func checkTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", domain.NewValidationError(domain.KindInvalidTitle, "degree_title", "must not be blank")
	}
	if n := utf8.RuneCountInString(t); n < TitleMinLength || n > TitleMaxLength {
		return "", domain.NewValidationError(domain.KindInvalidTitle, "degree_title", "must be between 5 and 100 characters")
	}
	return t, nil
}
