package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/academic-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/academic-catalog/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/academic-catalog/internal/domain"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/academic"
	"github.com/jsamuelsen11/academic-catalog/internal/ports"
	"github.com/jsamuelsen11/academic-catalog/mocks"
)

func newProgramHandler(t *testing.T) (*handlers.ProgramHandler, *mocks.MockProgramService) {
	t.Helper()
	svc := mocks.NewMockProgramService(t)
	return handlers.NewProgramHandler(svc), svc
}

// --- ListPrograms ---

func TestListPrograms_QueryParsing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantFilter ports.ProgramFilter
	}{
		{name: "no filter", query: "", wantFilter: ports.ProgramFilter{}},
		{
			name:       "classification",
			query:      "?classification=long&active=true",
			wantFilter: ports.ProgramFilter{ActiveOnly: true, Classification: academic.ClassificationLong},
		},
		{
			name:       "semester bounds",
			query:      "?min_semesters=8&max_semesters=10",
			wantFilter: ports.ProgramFilter{MinSemesters: 8, MaxSemesters: 10},
		},
		{
			name:       "title fragment",
			query:      "?title=ingeniero",
			wantFilter: ports.ProgramFilter{TitleContains: "ingeniero"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newProgramHandler(t)
			svc.EXPECT().ListPrograms(mock.Anything, tt.wantFilter).
				Return([]ports.ProgramView{*programView(t, true)}, nil)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/programs"+tt.query, nil)
			h.ListPrograms(rec, req)

			requireStatus(t, rec, http.StatusOK)
		})
	}
}

func TestListPrograms_MalformedBound(t *testing.T) {
	t.Parallel()
	h, _ := newProgramHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/programs?min_semesters=eight", nil)
	h.ListPrograms(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Kind != string(domain.KindMalformed) {
		t.Errorf("Kind = %q, want %q", resp.Kind, domain.KindMalformed)
	}
}

// --- RegisterProgram ---

func TestRegisterProgram_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProgramHandler(t)

	svc.EXPECT().RegisterProgram(mock.Anything, ports.RegisterProgram{
		FacultyID:   1,
		Name:        "física",
		Semesters:   10,
		DegreeTitle: "Licenciado en Física",
	}).Return(programView(t, true), nil)

	body := jsonBody(t, dto.RegisterProgramRequest{
		FacultyID:   1,
		Name:        "física",
		Semesters:   10,
		DegreeTitle: "Licenciado en Física",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/programs", body)
	h.RegisterProgram(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.ProgramResponse](t, rec)
	if resp.Years != 5 || resp.Classification != "standard" {
		t.Errorf("Years = %d, Classification = %q, want 5 standard", resp.Years, resp.Classification)
	}
}

func TestRegisterProgram_InactiveFaculty(t *testing.T) {
	t.Parallel()
	h, svc := newProgramHandler(t)

	svc.EXPECT().RegisterProgram(mock.Anything, mock.Anything).
		Return(nil, &domain.InvalidStateError{Kind: domain.StateFacultyInactive, Entity: "faculty", ID: 1})

	body := jsonBody(t, dto.RegisterProgramRequest{
		FacultyID: 1, Name: "Física", Semesters: 10, DegreeTitle: "Licenciado en Física",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/programs", body)
	h.RegisterProgram(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

func TestRegisterProgram_MissingFaculty(t *testing.T) {
	t.Parallel()
	h, _ := newProgramHandler(t)

	body := jsonBody(t, dto.RegisterProgramRequest{Name: "Física", Semesters: 10, DegreeTitle: "Licenciado en Física"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/programs", body)
	h.RegisterProgram(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- mutations ---

func TestUpdateProgram_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProgramHandler(t)

	svc.EXPECT().UpdateProgram(mock.Anything, int64(7), ports.UpdateProgram{
		Name:        "Física",
		Semesters:   10,
		DegreeTitle: "Licenciado en Física",
	}).Return(programView(t, true), nil)

	body := jsonBody(t, dto.UpdateProgramRequest{Name: "Física", Semesters: 10, DegreeTitle: "Licenciado en Física"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/programs/7", body)
	req = withChiParams(req, map[string]string{"id": "7"})
	h.UpdateProgram(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestChangeDuration_SameDuration(t *testing.T) {
	t.Parallel()
	h, svc := newProgramHandler(t)

	svc.EXPECT().ChangeDuration(mock.Anything, int64(7), 10).
		Return(nil, domain.NewValidationError(domain.KindSameDuration, "semesters", "is unchanged"))

	body := jsonBody(t, dto.ChangeDurationRequest{Semesters: 10})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/programs/7/duration", body)
	req = withChiParams(req, map[string]string{"id": "7"})
	h.ChangeDuration(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Kind != string(domain.KindSameDuration) {
		t.Errorf("Kind = %q, want %q", resp.Kind, domain.KindSameDuration)
	}
}

func TestChangeFaculty_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProgramHandler(t)

	svc.EXPECT().ChangeFaculty(mock.Anything, int64(7), int64(2)).Return(programView(t, false), nil)

	body := jsonBody(t, dto.ChangeFacultyRequest{FacultyID: 2})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/programs/7/faculty", body)
	req = withChiParams(req, map[string]string{"id": "7"})
	h.ChangeFaculty(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestActivationEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		call       func(h *handlers.ProgramHandler, w http.ResponseWriter, r *http.Request)
		setup      func(svc *mocks.MockProgramService)
		wantStatus int
	}{
		{
			name: "activate",
			call: (*handlers.ProgramHandler).ActivateProgram,
			setup: func(svc *mocks.MockProgramService) {
				svc.EXPECT().ActivateProgram(mock.Anything, int64(7)).Return(programView(t, true), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "activate under inactive faculty",
			call: (*handlers.ProgramHandler).ActivateProgram,
			setup: func(svc *mocks.MockProgramService) {
				svc.EXPECT().ActivateProgram(mock.Anything, int64(7)).
					Return(nil, &domain.InvalidStateError{Kind: domain.StateFacultyInactive, Entity: "faculty", ID: 1})
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "deactivate",
			call: (*handlers.ProgramHandler).DeactivateProgram,
			setup: func(svc *mocks.MockProgramService) {
				svc.EXPECT().DeactivateProgram(mock.Anything, int64(7)).Return(programView(t, false), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "get",
			call: (*handlers.ProgramHandler).GetProgram,
			setup: func(svc *mocks.MockProgramService) {
				svc.EXPECT().GetProgram(mock.Anything, int64(7)).Return(programView(t, true), nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newProgramHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/programs/7", nil)
			req = withChiParams(req, map[string]string{"id": "7"})
			tt.call(h, rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestDeleteProgram_StillActive(t *testing.T) {
	t.Parallel()
	h, svc := newProgramHandler(t)

	svc.EXPECT().DeleteProgram(mock.Anything, int64(7)).
		Return(&domain.InvalidStateError{Kind: domain.StateProgramActive, Entity: "program", ID: 7})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/programs/7", nil)
	req = withChiParams(req, map[string]string{"id": "7"})
	h.DeleteProgram(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

func TestDeleteProgram_Success(t *testing.T) {
	t.Parallel()
	h, svc := newProgramHandler(t)

	svc.EXPECT().DeleteProgram(mock.Anything, int64(7)).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/programs/7", nil)
	req = withChiParams(req, map[string]string{"id": "7"})
	h.DeleteProgram(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}
