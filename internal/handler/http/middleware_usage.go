package http

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/utils"
	"github.com/coladapo/puo-memo-platform/models"
)

// usageLogTimeout bounds the detached insert so a slow database cannot pile
// up goroutines.
const usageLogTimeout = 5 * time.Second

// withUsageTracking records one usage_logs row per authenticated API request:
// endpoint, method, status, latency and client metadata.
//
// The insert runs in a goroutine detached from the request context, so usage
// accounting never adds latency to the request and an insert failure never
// affects the response.
// It must sit inside the API-key auth middleware: requests without a
// [models.KeyAuth] in context pass through unrecorded.
func (h *Handler) withUsageTracking(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keyAuth, ok := utils.GetKeyAuthFromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		entry := models.UsageLog{
			UserID:         keyAuth.UserID,
			Endpoint:       r.URL.Path,
			Method:         r.Method,
			StatusCode:     lw.status,
			ResponseTimeMS: int(time.Since(start).Milliseconds()),
			IPAddress:      clientIP(r),
			UserAgent:      r.UserAgent(),
		}

		log := logger.FromRequest(r)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), usageLogTimeout)
			defer cancel()

			if err := h.usageLogs.InsertUsageLog(log.WithContext(ctx), entry); err != nil {
				log.Warn().Err(err).Str("endpoint", entry.Endpoint).Msg("usage log insert failed")
			}
		}()
	})
}

// clientIP strips the port from RemoteAddr; the raw value is kept when the
// address has no port (e.g. in tests).
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
