package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/academic-catalog/internal/domain/faculty"
	"github.com/jsamuelsen11/academic-catalog/internal/domain/program"
	"github.com/jsamuelsen11/academic-catalog/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func facultyView(t *testing.T, active bool) *ports.FacultyView {
	t.Helper()
	f, err := faculty.FromSnapshot(faculty.Snapshot{
		ID:           1,
		Name:         "Facultad de Ciencias",
		Description:  "Ciencias básicas",
		Location:     "Campus Central",
		Dean:         "Dr. Luis Paz",
		RegisteredAt: testTime,
		Active:       active,
	})
	if err != nil {
		t.Fatalf("faculty.FromSnapshot() error = %v", err)
	}
	return &ports.FacultyView{Faculty: f, ActivePrograms: 1}
}

func programView(t *testing.T, active bool) *ports.ProgramView {
	t.Helper()
	p, err := program.FromSnapshot(program.Snapshot{
		ID:           7,
		FacultyID:    1,
		Name:         "Física",
		Description:  "Física teórica y experimental",
		Semesters:    10,
		DegreeTitle:  "Licenciado en Física",
		RegisteredAt: testTime,
		Active:       active,
	})
	if err != nil {
		t.Fatalf("program.FromSnapshot() error = %v", err)
	}
	return &ports.ProgramView{Program: p, FacultyName: "Facultad de Ciencias"}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
