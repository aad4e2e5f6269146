package store

import (
	"context"
	"fmt"

	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/models"
)

// usageLogRepository is the PostgreSQL-backed implementation of
// [UsageLogRepository].
type usageLogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUsageLogRepository constructs a [UsageLogRepository] backed by the
// provided database connection and logger.
func NewUsageLogRepository(db *DB, logger *logger.Logger) UsageLogRepository {
	logger.Debug().Msg("creating usage log repository")
	return &usageLogRepository{
		db:     db,
		logger: logger,
	}
}

// InsertUsageLog appends one request record to the usage_logs table. The
// write is fire-and-forget from the caller's perspective: failures are
// logged and returned, but never block request handling.
func (r *usageLogRepository) InsertUsageLog(ctx context.Context, entry models.UsageLog) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertUsageLog,
		entry.UserID,
		entry.Endpoint,
		entry.Method,
		entry.StatusCode,
		entry.ResponseTimeMS,
		nullString(entry.IPAddress),
		nullString(entry.UserAgent),
	)
	if err != nil {
		log.Err(err).Str("func", "*usageLogRepository.InsertUsageLog").Msg("error inserting usage log")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
