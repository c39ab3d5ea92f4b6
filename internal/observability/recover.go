package observability

import (
	"fmt"
	"net/http"

	"fincalc-graph/internal/handlers"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RecoverMiddleware turns a handler panic into a logged 500 with msg as the
// JSON error body. http.ErrAbortHandler is re-raised so the server can abort
// the connection.
func RecoverMiddleware(msg string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				ctx := r.Context()
				span := trace.SpanFromContext(ctx)
				span.RecordError(fmt.Errorf("panic: %v", rec))
				span.SetStatus(codes.Error, msg)

				LoggerWithTrace(ctx).Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("request_id", RequestIDFromContext(ctx)),
					zap.Stack("stack"),
				)

				handlers.WriteError(w, http.StatusInternalServerError, msg)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
