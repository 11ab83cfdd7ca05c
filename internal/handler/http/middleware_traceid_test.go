package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler создаёт Handler с nop-логгером (без вывода в stdout).
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// pullThroughTraceID drives a pull-shaped request through the trace
// middleware and returns the recorded response.
func pullThroughTraceID(h *Handler, traceID string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"items":[],"serverTimestamp":0,"hasMore":false}`))
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/api/sync/books?since=0&limit=100", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- Клиентский trace ID возвращается в ответе ----

func TestWithTraceID_ClientSuppliedIDEchoedBack(t *testing.T) {
	// агент помечает sync-раунд своим идентификатором и ретраит с ним же
	tests := []struct {
		name    string
		traceID string
	}{
		{"sync round marker", "sync-round-000017-dev-a"},
		{"uuid minted by the agent", "550e8400-e29b-41d4-a716-446655440000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := pullThroughTraceID(newTestHandler(), tt.traceID)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.traceID, rr.Header().Get(traceIDHeader))
		})
	}
}

// ---- Без заголовка — каждый запрос получает свой UUID ----

func TestWithTraceID_GeneratedWhenAbsent(t *testing.T) {
	h := newTestHandler()
	seen := make(map[string]struct{})

	for i := 0; i < 25; i++ {
		rr := pullThroughTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)
		require.NotEmpty(t, id, "X-Trace-ID header must be set in response")

		_, err := uuid.Parse(id)
		require.NoError(t, err, "generated trace ID must be a UUID, got: %s", id)

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

// ---- Trace ID оказывается на request-scoped логгере ----

func TestWithTraceID_StampedOnRequestLogger(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&logBuf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Str("table", "books").Msg("pull page served")
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/api/sync/books?since=0&limit=100", nil)
	req.Header.Set(traceIDHeader, "push-retry-4")

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Contains(t, logBuf.String(), `"trace_id":"push-retry-4"`)
	assert.Contains(t, logBuf.String(), `"table":"books"`)
}

// ---- Заголовок присутствует и на ошибочных ответах ----

func TestWithTraceID_HeaderSetOnErrorResponses(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// так отвечает identity middleware при отсутствии X-Device-ID
		http.Error(w, "no device ID was given", http.StatusBadRequest)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodPost, "/api/sync/books", nil)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

// ---- Concurrent pulls — нет гонок, все ID уникальны ----

func TestWithTraceID_ConcurrentPulls(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.withTraceID(next)

	const n = 50
	done := make(chan string, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/api/sync/annotations?since=0&limit=50", nil)
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			done <- rr.Header().Get(traceIDHeader)
		}()
	}

	seen := make(map[string]struct{})
	for i := 0; i < n; i++ {
		id := <-done
		require.NotEmpty(t, id)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, n, "all generated trace IDs should be unique")
}
