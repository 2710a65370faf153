package middleware

import "net/http"

// Chain composes middleware so that the first argument is outermost. The
// catalog server wires
//
//	Chain(Recovery(logger), RequestID(), CorrelationID(), OpenTelemetry(metrics), Logging(logger), Timeout(d))
//
// which wraps the router as Recovery(RequestID(...Timeout(router))). Nil
// entries are skipped so optional layers can be passed unconditionally.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			if middlewares[i] == nil {
				continue
			}
			handler = middlewares[i](handler)
		}
		return handler
	}
}
