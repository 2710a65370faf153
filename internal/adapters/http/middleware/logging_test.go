package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/academic-catalog/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/academic-catalog/internal/platform/logging"
)

func TestLogging_LogsRegistrationRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Post("/api/v1/faculties", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":12}`))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/faculties", http.NoBody))

	output := buf.String()
	for _, want := range []string{
		"request started",
		"request completed",
		"method=POST",
		"path=/api/v1/faculties",
		"route=/api/v1/faculties",
		"status=201",
		"bytes=9",
		"duration=",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q:\n%s", want, output)
		}
	}
}

func TestLogging_RecordsRoutePatternNotPath(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Get("/api/v1/programs/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/programs/404", http.NoBody))

	output := buf.String()
	if !strings.Contains(output, "route=/api/v1/programs/{id}") {
		t.Errorf("log output missing route pattern:\n%s", output)
	}
	if !strings.Contains(output, "status=404") {
		t.Errorf("log output missing status=404:\n%s", output)
	}
}

func TestLogging_EnrichesContextLoggerWithIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(testLogger(&buf)),
	)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("faculty lookup")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/faculties/search?name=derecho", http.NoBody)
	req.Header.Set("X-Request-ID", "req-busqueda")
	req.Header.Set("X-Correlation-ID", "corr-busqueda")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var handlerLine string
	for line := range strings.SplitSeq(buf.String(), "\n") {
		if strings.Contains(line, "faculty lookup") {
			handlerLine = line
		}
	}
	if handlerLine == "" {
		t.Fatalf("handler log not captured by context logger:\n%s", buf.String())
	}
	for _, want := range []string{"request_id=req-busqueda", "correlation_id=corr-busqueda"} {
		if !strings.Contains(handlerLine, want) {
			t.Errorf("handler log missing %q: %s", want, handlerLine)
		}
	}
}

func TestLogging_DebugHeadersAreRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/programs/5", http.NoBody)
	req.Header.Set("Authorization", "Bearer registrar-token")
	req.Header.Set("Accept", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	output := buf.String()
	if !strings.Contains(output, "request headers") {
		t.Fatalf("debug header log missing:\n%s", output)
	}
	if strings.Contains(output, "registrar-token") {
		t.Errorf("log output leaks Authorization header:\n%s", output)
	}
	if !strings.Contains(output, "Accept=application/json") {
		t.Errorf("log output missing Accept header:\n%s", output)
	}
}

func TestLogging_CompletionLevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{status: http.StatusCreated, want: "level=INFO"},
		{status: http.StatusConflict, want: "level=WARN"},
		{status: http.StatusServiceUnavailable, want: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/programs", http.NoBody))

			var completed string
			for line := range strings.SplitSeq(buf.String(), "\n") {
				if strings.Contains(line, "request completed") {
					completed = line
				}
			}
			if !strings.Contains(completed, tt.want) {
				t.Errorf("completion log = %q, want %s", completed, tt.want)
			}
		})
	}
}
