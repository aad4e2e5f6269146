package workers

import (
	"context"
	"time"

	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/store"
)

// resetTimeout bounds a single reset pass so a stuck statement cannot block
// the worker loop past the next period boundary.
const resetTimeout = 5 * time.Minute

// MonthlyUsageResetWorker zeroes every user's monthly memory counter at the
// start of each calendar month (UTC). Quota checks read the counter directly,
// so a reset immediately reopens capacity for users at their limit.
type MonthlyUsageResetWorker struct {
	users store.UserRepository
	log   *logger.Logger
}

func NewMonthlyUsageResetWorker(users store.UserRepository, log *logger.Logger) *MonthlyUsageResetWorker {
	return &MonthlyUsageResetWorker{
		users: users,
		log:   log,
	}
}

// Run launches the reset loop in a background goroutine and returns
// immediately.
func (w *MonthlyUsageResetWorker) Run() {
	go w.loop()
}

func (w *MonthlyUsageResetWorker) loop() {
	for {
		now := time.Now().UTC()
		boundary := nextMonthStart(now)

		w.log.Info().
			Time("next_reset_at", boundary).
			Msg("monthly usage reset scheduled")

		timer := time.NewTimer(boundary.Sub(now))
		<-timer.C

		w.resetOnce()
	}
}

func (w *MonthlyUsageResetWorker) resetOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()
	ctx = w.log.WithContext(ctx)

	affected, err := w.users.ResetMonthlyCounts(ctx)
	if err != nil {
		w.log.Err(err).Str("func", "*MonthlyUsageResetWorker.resetOnce").Msg("monthly usage reset failed")
		return
	}

	w.log.Info().Int64("users_reset", affected).Msg("monthly usage counters reset")
}

// nextMonthStart returns midnight UTC on the first day of the month
// following t. time.Date normalizes month overflow, so December rolls
// into January of the next year.
func nextMonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}
