package http

import (
	"context"
	"net/http"

	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/utils"
)

// apiKeyHeader carries the programmatic-access credential. Bearer tokens
// authenticate people; API keys authenticate integrations.
const apiKeyHeader = "X-API-Key"

// apiKeyAuth is an HTTP middleware that enforces API-key authentication.
//
// It reads the "X-API-Key" header and validates the key via
// [service.APIKeyService.Validate]. On success the resulting [models.KeyAuth]
// (owner, key id, rate limits) is stored in the request context under
// [utils.KeyAuthCtxKey] before delegating to the next handler.
//
// A missing header is rejected with [ErrEmptyAPIKeyHeader]; every validation
// failure is rejected with a uniform 401 body so responses never reveal
// whether a key exists, is disabled, or has expired.
func (h *Handler) apiKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		key := r.Header.Get(apiKeyHeader)
		if key == "" {
			log.Err(ErrEmptyAPIKeyHeader).Send()
			http.Error(w, ErrEmptyAPIKeyHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		keyAuth, err := h.services.APIKeyService.Validate(ctx, key)
		if err != nil {
			log.Err(err).Msg("api key rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.KeyAuthCtxKey, keyAuth)
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, keyAuth.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
