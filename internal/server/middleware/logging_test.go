package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware_CapturesStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not Found"}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workspaces/missing", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"path":"/api/v1/workspaces/missing"`)
	assert.Contains(t, out, `"bytes_written":21`)
}

func TestLoggingMiddleware_DefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	// Handler writes body without calling WriteHeader
	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestLoggingMiddleware_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success is info", status: http.StatusOK, wantLevel: `"level":"INFO"`},
		{name: "client error is warn", status: http.StatusBadRequest, wantLevel: `"level":"WARN"`},
		{name: "server error is error", status: http.StatusInternalServerError, wantLevel: `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Contains(t, buf.String(), tt.wantLevel)
		})
	}
}

func TestLoggingWithSkip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := LoggingWithSkip(logger, []string{"/api/v1/health"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Skipped path produces no log entry
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Empty(t, buf.String())

	// Other paths are still logged
	req = httptest.NewRequest(http.MethodGet, "/api/v1/workspaces", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Contains(t, buf.String(), `"path":"/api/v1/workspaces"`)
}

func TestResponseWriter_ForwardsFlush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	// The wrapper itself must satisfy http.Flusher for SSE handlers
	var w http.ResponseWriter = rw
	flusher, ok := w.(http.Flusher)
	assert.True(t, ok, "wrapped writer should expose http.Flusher")

	flusher.Flush()
	assert.True(t, rec.Flushed)
}
