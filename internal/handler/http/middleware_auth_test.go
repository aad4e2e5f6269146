package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coladapo/puo-memo-platform/internal/service"
	"github.com/coladapo/puo-memo-platform/internal/utils"
	"github.com/coladapo/puo-memo-platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextCapture records whether the wrapped handler ran and with which context.
type nextCapture struct {
	called bool
	userID string
	auth   models.KeyAuth
	hasKey bool
}

func (n *nextCapture) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.userID, _ = utils.GetUserIDFromContext(r.Context())
		n.auth, n.hasKey = utils.GetKeyAuthFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// ─────────────────────────────────────────────
// bearer auth middleware
// ─────────────────────────────────────────────

func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{UserID: "user-1"}, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	var next nextCapture
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rr := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, next.called)
	assert.Equal(t, "user-1", next.userID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	var next nextCapture
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rr := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, next.called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	var next nextCapture
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer")
	rr := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, next.called)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{}, service.ErrTokenInvalid
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	var next nextCapture
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rr := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, next.called)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────
// api key middleware
// ─────────────────────────────────────────────

func TestAPIKeyMiddleware_Success(t *testing.T) {
	keys := &mockAPIKeyService{
		validateFn: func(_ context.Context, key string) (models.KeyAuth, error) {
			assert.Equal(t, "puo_memo_key_valid", key)
			return testKeyAuth, nil
		},
	}
	h := newTestHandler(t, nil, keys, nil)

	var next nextCapture
	req := httptest.NewRequest(http.MethodPost, "/memories", nil)
	req.Header.Set(apiKeyHeader, "puo_memo_key_valid")
	rr := httptest.NewRecorder()

	h.apiKeyAuth(next.handler()).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, next.called)
	require.True(t, next.hasKey)
	assert.Equal(t, testKeyAuth.APIKeyID, next.auth.APIKeyID)
	assert.Equal(t, testKeyAuth.UserID, next.userID)
}

func TestAPIKeyMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(t, nil, &mockAPIKeyService{}, nil)

	var next nextCapture
	req := httptest.NewRequest(http.MethodPost, "/memories", nil)
	rr := httptest.NewRecorder()

	h.apiKeyAuth(next.handler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, next.called)
}

func TestAPIKeyMiddleware_InvalidKey(t *testing.T) {
	keys := &mockAPIKeyService{
		validateFn: func(context.Context, string) (models.KeyAuth, error) {
			return models.KeyAuth{}, service.ErrAPIKeyInvalid
		},
	}
	h := newTestHandler(t, nil, keys, nil)

	var next nextCapture
	req := httptest.NewRequest(http.MethodPost, "/memories", nil)
	req.Header.Set(apiKeyHeader, "puo_memo_key_unknown")
	rr := httptest.NewRecorder()

	h.apiKeyAuth(next.handler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, next.called)
}
