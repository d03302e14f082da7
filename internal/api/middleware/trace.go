// Package middleware holds the HTTP middleware applied to every router.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/bunshock/hipbank/internal/api/shared"
	"github.com/bunshock/hipbank/internal/platform/logger"
)

// Trace attaches a trace ID to the request context and logs the incoming
// request. It also stores a request-scoped logger carrying the trace ID, so
// every layer below logs with the same correlation attribute. Apply it early
// in the chain so every handler and error response sees the same ID.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)
		ctx = logger.WithLogger(ctx, slog.Default().With(slog.String("trace_id", traceID)))

		slog.Debug("request started",
			slog.String("trace_id", traceID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
