package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_RecordsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		codes []int
		want  int
	}{
		{name: "nothing written defaults to OK", want: http.StatusOK},
		{name: "faculty registered", codes: []int{http.StatusCreated}, want: http.StatusCreated},
		{name: "program deleted", codes: []int{http.StatusNoContent}, want: http.StatusNoContent},
		{
			name:  "second status is ignored",
			codes: []int{http.StatusConflict, http.StatusInternalServerError},
			want:  http.StatusConflict,
		},
		{
			name:  "early hints do not fix the status",
			codes: []int{http.StatusEarlyHints, http.StatusCreated},
			want:  http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			for _, code := range tt.codes {
				rw.WriteHeader(code)
			}

			if rw.statusCode != tt.want {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.want)
			}
			if rw.headerWritten != (len(tt.codes) > 0) {
				t.Errorf("headerWritten = %v, want %v", rw.headerWritten, len(tt.codes) > 0)
			}
			// httptest.ResponseRecorder latches the first code, 1xx included.
			if len(tt.codes) > 0 && tt.codes[0] >= 200 && rec.Code != tt.want {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestResponseWriter_EarlyHintsLeaveResponseUnstarted(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())
	rw.WriteHeader(http.StatusEarlyHints)

	if rw.headerWritten {
		t.Error("headerWritten = true after 103, want false")
	}
}

func TestResponseWriter_CountsBodyBytes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	n, err := rw.Write([]byte(`[{"id":1},`))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 10 {
		t.Errorf("Write() = %d, want 10", n)
	}
	_, _ = rw.Write([]byte(`{"id":2}]`))

	if rw.written != 19 {
		t.Errorf("written = %d, want 19", rw.written)
	}
	if !rw.headerWritten {
		t.Error("headerWritten = false after Write, want true")
	}
	if rw.statusCode != http.StatusOK {
		t.Errorf("statusCode = %d, want implicit %d", rw.statusCode, http.StatusOK)
	}
	if rec.Body.String() != `[{"id":1},{"id":2}]` {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if rw.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
	if err := http.NewResponseController(rw).Flush(); err != nil {
		t.Errorf("Flush through wrapper: %v", err)
	}
}
