package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/academic-catalog/internal/adapters/http/dto"
)

// Recovery returns middleware that turns a handler panic into a 500 problem
// response with kind "internal". The panic value, stack, and matched catalog
// route are logged; none of them reach the client. If the response has
// already started only the log entry is written.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the connection
// without logging a stack.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", routePattern(r)),
					slog.Bool("response_started", rw.headerWritten),
				)

				if !rw.headerWritten {
					dto.WriteStatusResponse(rw, r, http.StatusInternalServerError, dto.KindInternal)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
