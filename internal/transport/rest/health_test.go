package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tarot-backend/internal/service/reading/deck"
)

type dbPingerMock struct {
	err error
}

func (m *dbPingerMock) Ping(_ context.Context) error {
	return m.err
}

type fixedSize int

func (s fixedSize) Len() int { return int(s) }

func serveHealth(t *testing.T, h *HealthHandler, handler http.HandlerFunc, path string) (int, HealthResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec.Code, resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dbPingerMock{err: errors.New("down")}, deck.NewCatalog(), "test")
	code, resp := serveHealth(t, h, h.Live, "/live")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		wantCode   int
		wantStatus string
	}{
		{"db up", nil, http.StatusOK, "ok"},
		{"db down", errors.New("connection refused"), http.StatusServiceUnavailable, "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(&dbPingerMock{err: tt.pingErr}, deck.NewCatalog(), "test")
			code, resp := serveHealth(t, h, h.Ready, "/ready")

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStatus, resp.Status)
		})
	}
}

func TestHealth_AllOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dbPingerMock{}, deck.NewCatalog(), "v1.0.0")
	code, resp := serveHealth(t, h, h.Health, "/health")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "v1.0.0", resp.Version)
	assert.Equal(t, "ok", resp.Components["database"].Status)
	assert.NotEmpty(t, resp.Components["database"].Latency)
	assert.Equal(t, CompStatus{Status: "ok", Detail: "78 cards"}, resp.Components["catalog"])
}

func TestHealth_DBDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dbPingerMock{err: errors.New("connection refused")}, deck.NewCatalog(), "v1.0.0")
	code, resp := serveHealth(t, h, h.Health, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "down", resp.Status)
	assert.Equal(t, "down", resp.Components["database"].Status)
	assert.Empty(t, resp.Components["database"].Latency)
}

func TestHealth_IncompleteCatalog(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dbPingerMock{}, fixedSize(77), "v1.0.0")
	code, resp := serveHealth(t, h, h.Health, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "down", resp.Components["catalog"].Status)
	assert.Equal(t, "77 cards", resp.Components["catalog"].Detail)
}
