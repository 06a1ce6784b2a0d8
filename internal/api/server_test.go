package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbinite/gids/internal/configstore"
	"github.com/orbinite/gids/internal/log"
)

func TestNewServer_Validation(t *testing.T) {
	logger := log.NewNop()
	store := configstore.NewMemory()
	gen := &fakeGenerator{}

	t.Run("nil store", func(t *testing.T) {
		_, err := NewServer(nil, gen, ServerConfig{}, logger)
		assert.Error(t, err)
	})

	t.Run("nil generator", func(t *testing.T) {
		_, err := NewServer(store, nil, ServerConfig{}, logger)
		assert.Error(t, err)
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := NewServer(store, gen, ServerConfig{}, nil)
		assert.Error(t, err)
	})

	t.Run("zero timeout gets default", func(t *testing.T) {
		srv, err := NewServer(store, gen, ServerConfig{}, logger)
		require.NoError(t, err)
		assert.Equal(t, DefaultRequestTimeout, srv.cfg.RequestTimeout)
	})
}

func TestServer_HealthEndpoints(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("GET /health returns 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("GET /ready returns 200 with a working store", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ready", w.Body.String())
	})

	t.Run("GET /ready returns 503 when the store is down", func(t *testing.T) {
		broken := newTestHandler(t, withStore(&failingStore{err: assert.AnError}))

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		w := httptest.NewRecorder()

		broken.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestServer_UnknownRoute(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_RunShutdown(t *testing.T) {
	store := configstore.NewMemory()
	srv, err := NewServer(store, &fakeGenerator{reply: "ok"}, ServerConfig{
		AdminPassword: testAdminPassword,
	}, log.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, "127.0.0.1:0")
	}()

	// Give the listener a moment, then trigger graceful shutdown.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
