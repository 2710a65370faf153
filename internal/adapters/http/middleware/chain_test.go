package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/academic-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/academic-catalog/internal/adapters/http/middleware"
)

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	handler := middleware.Chain()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/programs/4", http.NoBody))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestChain_FirstIsOutermostAndNilIsSkipped(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+":before")
				next.ServeHTTP(w, r)
				order = append(order, name+":after")
			})
		}
	}

	handler := middleware.Chain(
		mw("recovery"),
		nil,
		mw("logging"),
	)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/faculties", http.NoBody))

	want := []string{"recovery:before", "logging:before", "handler", "logging:after", "recovery:after"}
	if len(order) != len(want) {
		t.Fatalf("execution order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestChain_CatalogPipeline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := catalogRouter(middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(logger),
		middleware.Timeout(5*time.Second),
	), func(w http.ResponseWriter, r *http.Request) {
		if middleware.RequestIDFromContext(r.Context()) == "" {
			t.Error("request ID not in context")
		}
		if got := middleware.CorrelationIDFromContext(r.Context()); got != "matricula-2026" {
			t.Errorf("correlation ID = %q, want %q", got, "matricula-2026")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/faculties/7", http.NoBody)
	req.Header.Set("X-Correlation-ID", "matricula-2026")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != "matricula-2026" {
		t.Errorf("X-Correlation-ID = %q, want %q", got, "matricula-2026")
	}

	logOutput := buf.String()
	for _, want := range []string{"request started", "request completed", "route=/api/v1/faculties/{id}", "bytes=8"} {
		if !strings.Contains(logOutput, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestChain_PanicKeepsRequestIDOnProblem(t *testing.T) {
	t.Parallel()

	handler := catalogRouter(middleware.Chain(
		middleware.Recovery(discardLogger()),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(discardLogger()),
	), func(_ http.ResponseWriter, _ *http.Request) {
		panic("unreachable faculty state")
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/faculties/9", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("problem response missing X-Request-ID header")
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	if body.Kind != dto.KindInternal {
		t.Errorf("kind = %q, want %q", body.Kind, dto.KindInternal)
	}
}
