package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNewWritesServiceAttribute(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json", "pos-svc")

	log.Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "pos-svc", line["service"])
	assert.Equal(t, "hello", line["msg"])
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
		status    int
		wantLevel string
	}{
		{name: "generated id", status: http.StatusOK, wantLevel: "INFO"},
		{name: "propagated id", requestID: "req-42", status: http.StatusNotFound, wantLevel: "WARN"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, "debug", "json", "pos-svc")

			handler := Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.status)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if testCase.requestID != "" {
				req.Header.Set(RequestIDHeader, testCase.requestID)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			gotID := w.Header().Get(RequestIDHeader)
			if testCase.requestID != "" {
				assert.Equal(t, testCase.requestID, gotID)
			} else {
				_, err := uuid.Parse(gotID)
				assert.NoError(t, err)
			}

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, testCase.wantLevel, line["level"])
			assert.Equal(t, float64(testCase.status), line["status"])
			assert.Equal(t, "/api/orders", line["path"])
			assert.Equal(t, gotID, line["request_id"])
		})
	}
}
