// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/academic-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/academic-catalog/internal/ports"
)

// FacultyHandler handles HTTP requests for faculty use cases.
type FacultyHandler struct {
	svc      ports.FacultyService
	programs ports.ProgramService
}

// NewFacultyHandler creates a FacultyHandler. The program service serves the
// nested /faculties/{id}/programs listing.
func NewFacultyHandler(svc ports.FacultyService, programs ports.ProgramService) *FacultyHandler {
	return &FacultyHandler{svc: svc, programs: programs}
}

// ListFaculties handles GET /api/v1/faculties?active=&location=.
func (h *FacultyHandler) ListFaculties(w http.ResponseWriter, r *http.Request) {
	active, err := queryBool(r, "active")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	views, err := h.svc.ListFaculties(r.Context(), ports.FacultyFilter{
		ActiveOnly: active,
		Location:   r.URL.Query().Get("location"),
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFacultyListResponse(views))
}

// RegisterFaculty handles POST /api/v1/faculties.
func (h *FacultyHandler) RegisterFaculty(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterFacultyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.RegisterFaculty(r.Context(), req.Command())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToFacultyResponse(view))
}

// SearchFaculty handles GET /api/v1/faculties/search?name=.
func (h *FacultyHandler) SearchFaculty(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.FindFacultyByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFacultyResponse(view))
}

// GetFaculty handles GET /api/v1/faculties/{id}.
func (h *FacultyHandler) GetFaculty(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, h.svc.GetFaculty)
}

// UpdateFaculty handles PUT /api/v1/faculties/{id}.
func (h *FacultyHandler) UpdateFaculty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.UpdateFaculty(r.Context(), id, req.Command())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFacultyResponse(view))
}

// ChangeDean handles PUT /api/v1/faculties/{id}/dean.
func (h *FacultyHandler) ChangeDean(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.ChangeDeanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.svc.ChangeDean(r.Context(), id, req.Dean)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFacultyResponse(view))
}

// ActivateFaculty handles PUT /api/v1/faculties/{id}/activate.
func (h *FacultyHandler) ActivateFaculty(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, h.svc.ActivateFaculty)
}

// DeactivateFaculty handles PUT /api/v1/faculties/{id}/deactivate.
func (h *FacultyHandler) DeactivateFaculty(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, h.svc.DeactivateFaculty)
}

// DeleteFaculty handles DELETE /api/v1/faculties/{id}.
func (h *FacultyHandler) DeleteFaculty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteFaculty(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListFacultyPrograms handles GET /api/v1/faculties/{id}/programs?active=.
func (h *FacultyHandler) ListFacultyPrograms(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	active, err := queryBool(r, "active")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	views, err := h.programs.ListFacultyPrograms(r.Context(), id, active)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProgramListResponse(views))
}

// respond runs a single-id use case and writes the resulting faculty.
func (h *FacultyHandler) respond(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	op func(context.Context, int64) (*ports.FacultyView, error),
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

	writeJSON(w, status, dto.ToFacultyResponse(view))
}
