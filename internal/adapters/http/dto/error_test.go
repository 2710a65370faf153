package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/academic-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/academic-catalog/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
		wantKind   string
	}{
		{
			name:       "not found maps to 404",
			err:        domain.NewNotFoundError("faculty", 7),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
			wantKind:   "not_found",
		},
		{
			name:       "validation maps to 400",
			err:        domain.NewValidationError(domain.KindDuplicateName, "name", "already taken"),
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
			wantKind:   "duplicate_name",
		},
		{
			name:       "invalid state maps to 409",
			err:        &domain.InvalidStateError{Kind: domain.StateHasPrograms, Entity: "faculty", ID: 1},
			wantStatus: http.StatusConflict,
			wantTitle:  "Conflict",
			wantKind:   "has_programs",
		},
		{
			name:       "concurrency maps to 409",
			err:        &domain.ConcurrencyError{Op: "RegisterFaculty"},
			wantStatus: http.StatusConflict,
			wantTitle:  "Conflict",
			wantKind:   "concurrent_modification",
		},
		{
			name:       "unavailable maps to 503",
			err:        fmt.Errorf("storage: %w", domain.ErrUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantTitle:  "Service Unavailable",
			wantKind:   "unavailable",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
		{
			name:       "wrapped not found preserves mapping",
			err:        fmt.Errorf("loading program: %w", domain.NewNotFoundError("program", 3)),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
			wantKind:   "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/faculties/42", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.wantKind)
			}
		})
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/programs", nil)
	err := domain.NewNotFoundError("faculty", 9)

	got := dto.NewErrorResponse(r, err)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", got.Type, "about:blank")
	}
	if got.Instance != "/api/v1/programs" {
		t.Errorf("Instance = %q, want %q", got.Instance, "/api/v1/programs")
	}
	if got.Detail != err.Error() {
		t.Errorf("Detail = %q, want %q", got.Detail, err.Error())
	}
}

func TestNewErrorResponse_HidesInternalDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/faculties", nil)
	got := dto.NewErrorResponse(r, errors.New("sql: no such table: faculties"))

	if got.Detail != "" {
		t.Errorf("Detail = %q, want empty for internal errors", got.Detail)
	}
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Kind: domain.KindBlank, Fields: map[string]string{
		"name":         "is required",
		"dean":         "is required",
		"degree_title": "is required",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/faculties", nil)
	got := dto.NewErrorResponse(r, verr)

	if len(got.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(got.Errors))
	}

	for i := 1; i < len(got.Errors); i++ {
		if got.Errors[i-1].Location >= got.Errors[i].Location {
			t.Errorf("Errors not sorted: %q >= %q", got.Errors[i-1].Location, got.Errors[i].Location)
		}
	}

	for _, detail := range got.Errors {
		if len(detail.Location) < 6 || detail.Location[:5] != "body." {
			t.Errorf("Location %q does not start with %q", detail.Location, "body.")
		}
	}
}

func TestNewErrorResponse_NoValidationErrorsForNonValidation(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/programs/1", nil)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	if got.Errors != nil {
		t.Errorf("Errors = %v, want nil for non-validation error", got.Errors)
	}
}

func TestWriteErrorResponse_ContentType(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/programs/42", nil)

	dto.WriteErrorResponse(w, r, domain.ErrNotFound)

	ct := w.Header().Get("Content-Type")
	if ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
}

func TestWriteErrorResponse_ValidJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/v1/programs/4/duration", nil)

	dto.WriteErrorResponse(w, r, domain.NewValidationError(domain.KindSameDuration, "semesters", "is unchanged"))

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if w.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if resp.Kind != "same_duration" {
		t.Errorf("Kind = %q, want %q", resp.Kind, "same_duration")
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(resp.Errors))
	}
	if resp.Errors[0].Location != "body.semesters" {
		t.Errorf("Errors[0].Location = %q, want %q", resp.Errors[0].Location, "body.semesters")
	}
}
