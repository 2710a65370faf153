package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/academic-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/academic"
	"github.com/jsamuelsen11/academic-catalog/internal/ports"
)

// ProgramHandler handles HTTP requests for program use cases.
type ProgramHandler struct {
	svc ports.ProgramService
}

// NewProgramHandler creates a new ProgramHandler with the given service port.
func NewProgramHandler(svc ports.ProgramService) *ProgramHandler {
	return &ProgramHandler{svc: svc}
}

// ListPrograms handles
// GET /api/v1/programs?active=&classification=&min_semesters=&max_semesters=&title=.
func (h *ProgramHandler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	filter, err := programFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	views, err := h.svc.ListPrograms(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProgramListResponse(views))
}

// RegisterProgram handles POST /api/v1/programs.
func (h *ProgramHandler) RegisterProgram(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterProgramRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.RegisterProgram(r.Context(), req.Command())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProgramResponse(view))
}

// GetProgram handles GET /api/v1/programs/{id}.
func (h *ProgramHandler) GetProgram(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.GetProgram)
}

// UpdateProgram handles PUT /api/v1/programs/{id}.
func (h *ProgramHandler) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProgramRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.UpdateProgram(r.Context(), id, req.Command())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProgramResponse(view))
}

// ChangeDuration handles PUT /api/v1/programs/{id}/duration.
func (h *ProgramHandler) ChangeDuration(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.ChangeDurationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.ChangeDuration(r.Context(), id, req.Semesters)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProgramResponse(view))
}

// ChangeFaculty handles PUT /api/v1/programs/{id}/faculty.
func (h *ProgramHandler) ChangeFaculty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.ChangeFacultyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.ChangeFaculty(r.Context(), id, req.FacultyID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProgramResponse(view))
}

// ActivateProgram handles PUT /api/v1/programs/{id}/activate.
func (h *ProgramHandler) ActivateProgram(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.ActivateProgram)
}

// DeactivateProgram handles PUT /api/v1/programs/{id}/deactivate.
func (h *ProgramHandler) DeactivateProgram(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.DeactivateProgram)
}

// DeleteProgram handles DELETE /api/v1/programs/{id}.
func (h *ProgramHandler) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteProgram(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProgramHandler) respond(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, int64) (*ports.ProgramView, error),
) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := op(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProgramResponse(view))
}

// programFilter reads the list query parameters. Range and precedence
// checks belong to the service.
func programFilter(r *http.Request) (ports.ProgramFilter, error) {
	active, err := queryBool(r, "active")
	if err != nil {
		return ports.ProgramFilter{}, err
	}
	minSemesters, err := queryInt(r, "min_semesters")
	if err != nil {
		return ports.ProgramFilter{}, err
	}
	maxSemesters, err := queryInt(r, "max_semesters")
	if err != nil {
		return ports.ProgramFilter{}, err
	}

	q := r.URL.Query()
	return ports.ProgramFilter{
		ActiveOnly:     active,
		Classification: academic.Classification(q.Get("classification")),
		MinSemesters:   minSemesters,
		MaxSemesters:   maxSemesters,
		TitleContains:  q.Get("title"),
	}, nil
}
