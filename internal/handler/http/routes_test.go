package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coladapo/puo-memo-platform/internal/service"
	"github.com/coladapo/puo-memo-platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_PublicEndpoints(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockAPIKeyService{}, &mockMemoryService{})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health models.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "test", health.Version)

	infoResp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer infoResp.Body.Close()
	assert.Equal(t, http.StatusOK, infoResp.StatusCode)
}

func TestRoutes_BearerGroupRejectsAnonymous(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockAPIKeyService{}, &mockMemoryService{})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/auth/me")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoutes_APIKeyGroupRejectsAnonymous(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockAPIKeyService{}, &mockMemoryService{})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	for _, path := range []string{"/search", "/v1/recall"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}
}

func TestRoutes_V1AliasesServeSameHandlers(t *testing.T) {
	searched := make(chan string, 2)
	keys := &mockAPIKeyService{
		validateFn: func(context.Context, string) (models.KeyAuth, error) {
			return testKeyAuth, nil
		},
	}
	memories := &mockMemoryService{
		searchFn: func(_ context.Context, userID, _ string, _ int) ([]models.Memory, error) {
			searched <- userID
			return []models.Memory{}, nil
		},
	}
	h := newTestHandler(t, &mockAuthService{}, keys, memories)
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	for _, path := range []string{"/search", "/v1/recall"} {
		req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
		require.NoError(t, err)
		req.Header.Set(apiKeyHeader, "puo_memo_key_valid")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "path %s", path)

		select {
		case userID := <-searched:
			assert.Equal(t, testKeyAuth.UserID, userID)
		case <-time.After(time.Second):
			t.Fatalf("search was not invoked for %s", path)
		}
	}
}

func TestRoutes_TraceIDHeaderSet(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockAPIKeyService{}, &mockMemoryService{})
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
}

// ensure mock services satisfy the interfaces wired by Init
var (
	_ service.AuthService   = (*mockAuthService)(nil)
	_ service.APIKeyService = (*mockAPIKeyService)(nil)
	_ service.MemoryService = (*mockMemoryService)(nil)
)
