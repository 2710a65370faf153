// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/academic-catalog/internal/ports"
)

// FacultyResponse represents a single faculty in HTTP responses.
type FacultyResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Initials       string `json:"initials"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Dean           string `json:"dean"`
	Active         bool   `json:"active"`
	ActivePrograms int    `json:"active_programs"`
	RegisteredAt   string `json:"registered_at"`
}

// FacultyListResponse represents a list of faculties in HTTP responses.
type FacultyListResponse struct {
	Faculties []FacultyResponse `json:"faculties"`
	Count     int               `json:"count"`
}

// ToFacultyResponse converts a faculty view to an HTTP response DTO.
func ToFacultyResponse(v *ports.FacultyView) FacultyResponse {
	f := v.Faculty
	return FacultyResponse{
		ID:             f.ID(),
		Name:           f.Name().String(),
		Initials:       f.Initials(),
		Description:    f.Description(),
		Location:       f.Location(),
		Dean:           f.Dean(),
		Active:         f.IsActive(),
		ActivePrograms: v.ActivePrograms,
		RegisteredAt:   f.RegisteredAt().Format(time.RFC3339),
	}
}

// ToFacultyListResponse converts faculty views to an HTTP list response DTO.
func ToFacultyListResponse(views []ports.FacultyView) FacultyListResponse {
	items := make([]FacultyResponse, len(views))
	for i := range views {
		items[i] = ToFacultyResponse(&views[i])
	}
	return FacultyListResponse{
		Faculties: items,
		Count:     len(items),
	}
}

// ProgramResponse represents a single program in HTTP responses.
type ProgramResponse struct {
	ID             int64  `json:"id"`
	FacultyID      int64  `json:"faculty_id"`
	FacultyName    string `json:"faculty_name"`
	Name           string `json:"name"`
	Initials       string `json:"initials"`
	Description    string `json:"description"`
	Semesters      int    `json:"semesters"`
	Years          int    `json:"years"`
	Classification string `json:"classification"`
	DegreeTitle    string `json:"degree_title"`
	Active         bool   `json:"active"`
	RegisteredAt   string `json:"registered_at"`
}

// ProgramListResponse represents a list of programs in HTTP responses.
type ProgramListResponse struct {
	Programs []ProgramResponse `json:"programs"`
	Count    int               `json:"count"`
}

// ToProgramResponse converts a program view to an HTTP response DTO.
func ToProgramResponse(v *ports.ProgramView) ProgramResponse {
	p := v.Program
	d := p.Duration()
	return ProgramResponse{
		ID:             p.ID(),
		FacultyID:      p.FacultyID(),
		FacultyName:    v.FacultyName,
		Name:           p.Name().String(),
		Initials:       p.Name().Initials(),
		Description:    p.Description(),
		Semesters:      d.Semesters(),
		Years:          p.YearsLength(),
		Classification: string(d.Classification()),
		DegreeTitle:    p.DegreeTitle(),
		Active:         p.IsActive(),
		RegisteredAt:   p.RegisteredAt().Format(time.RFC3339),
	}
}

// ToProgramListResponse converts program views to an HTTP list response DTO.
func ToProgramListResponse(views []ports.ProgramView) ProgramListResponse {
	items := make([]ProgramResponse, len(views))
	for i := range views {
		items[i] = ToProgramResponse(&views[i])
	}
	return ProgramListResponse{
		Programs: items,
		Count:    len(items),
	}
}
