package dto

import (
	"strings"

	"github.com/jsamuelsen11/academic-catalog/internal/domain"
	"github.com/jsamuelsen11/academic-catalog/internal/ports"
)

const (
	msgRequired = "is required"
	msgPositive = "must be a positive id"
)

// requestErrors collects per-field problems found before a request reaches
// the domain. Value objects apply the full rules afterwards.
type requestErrors map[string]string

func (e requestErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e[field] = msgRequired
	}
}

func (e requestErrors) positive(field string, id int64) {
	if id <= 0 {
		e[field] = msgPositive
	}
}

func (e requestErrors) err() error {
	if len(e) == 0 {
		return nil
	}
	return &domain.ValidationError{Kind: domain.KindBlank, Fields: e}
}

// RegisterFacultyRequest represents the JSON body for registering a faculty.
type RegisterFacultyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Dean        string `json:"dean"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *RegisterFacultyRequest) Validate() error {
	errs := requestErrors{}
	errs.required("name", r.Name)
	errs.required("dean", r.Dean)
	return errs.err()
}

// Command maps the request onto the service input.
func (r *RegisterFacultyRequest) Command() ports.RegisterFaculty {
	return ports.RegisterFaculty{
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		Dean:        r.Dean,
	}
}

// UpdateFacultyRequest replaces the descriptive fields of a faculty.
type UpdateFacultyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Validate checks that required fields are present.
func (r *UpdateFacultyRequest) Validate() error {
	errs := requestErrors{}
	errs.required("name", r.Name)
	return errs.err()
}

// Command maps the request onto the service input.
func (r *UpdateFacultyRequest) Command() ports.UpdateFaculty {
	return ports.UpdateFaculty{
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
	}
}

// ChangeDeanRequest names a faculty's new dean.
type ChangeDeanRequest struct {
	Dean string `json:"dean"`
}

// Validate checks that the dean is present.
func (r *ChangeDeanRequest) Validate() error {
	errs := requestErrors{}
	errs.required("dean", r.Dean)
	return errs.err()
}

// RegisterProgramRequest represents the JSON body for registering a program.
type RegisterProgramRequest struct {
	FacultyID   int64  `json:"faculty_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Semesters   int    `json:"semesters"`
	DegreeTitle string `json:"degree_title"`
}

// Validate checks that required fields are present. The semester range is
// left to the domain.
func (r *RegisterProgramRequest) Validate() error {
	errs := requestErrors{}
	errs.positive("faculty_id", r.FacultyID)
	errs.required("name", r.Name)
	errs.required("degree_title", r.DegreeTitle)
	return errs.err()
}

// Command maps the request onto the service input.
func (r *RegisterProgramRequest) Command() ports.RegisterProgram {
	return ports.RegisterProgram{
		FacultyID:   r.FacultyID,
		Name:        r.Name,
		Description: r.Description,
		Semesters:   r.Semesters,
		DegreeTitle: r.DegreeTitle,
	}
}

// UpdateProgramRequest replaces the academic fields of a program.
type UpdateProgramRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Semesters   int    `json:"semesters"`
	DegreeTitle string `json:"degree_title"`
}

// Validate checks that required fields are present.
func (r *UpdateProgramRequest) Validate() error {
	errs := requestErrors{}
	errs.required("name", r.Name)
	errs.required("degree_title", r.DegreeTitle)
	return errs.err()
}

// Command maps the request onto the service input.
func (r *UpdateProgramRequest) Command() ports.UpdateProgram {
	return ports.UpdateProgram{
		Name:        r.Name,
		Description: r.Description,
		Semesters:   r.Semesters,
		DegreeTitle: r.DegreeTitle,
	}
}

// ChangeDurationRequest sets a program's length in semesters.
type ChangeDurationRequest struct {
	Semesters int `json:"semesters"`
}

// Validate defers the range check to the domain.
func (r *ChangeDurationRequest) Validate() error {
	return nil
}

// ChangeFacultyRequest moves a program to another faculty.
type ChangeFacultyRequest struct {
	FacultyID int64 `json:"faculty_id"`
}

// Validate checks that the target faculty id is usable.
func (r *ChangeFacultyRequest) Validate() error {
	errs := requestErrors{}
	errs.positive("faculty_id", r.FacultyID)
	return errs.err()
}
