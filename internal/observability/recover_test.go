package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fincalc-graph/internal/testutil"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecoverMiddlewareWritesJSONError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = oldLogger })

	h := RecoverMiddleware("Graph generation failed")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("cap out of range"))
	}))

	r := httptest.NewRequest(http.MethodPost, "/api/graph", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-9"))
	w := testutil.ExecuteRequest(r, h)

	testutil.CheckResponseCode(t, http.StatusInternalServerError, w.Code)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var body map[string]string
	testutil.DecodeJSONBody(t, w.Body, &body)
	if len(body) != 1 || body["error"] != "Graph generation failed" {
		t.Fatalf("unexpected body %v", body)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("expected error level, got %s", entries[0].Level)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-9" {
		t.Fatalf("expected request_id req-9, got %#v", got)
	}
}

func TestRecoverMiddlewarePassesThrough(t *testing.T) {
	h := RecoverMiddleware("Graph generation failed")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/health", nil), h)

	testutil.CheckResponseCode(t, http.StatusNoContent, w.Code)
}

func TestRecoverMiddlewareReraisesAbortHandler(t *testing.T) {
	h := RecoverMiddleware("Graph generation failed")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Fatalf("expected http.ErrAbortHandler to propagate, got %v", rec)
		}
	}()

	testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/api/graph", nil), h)
}
