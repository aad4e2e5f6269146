package workers

import (
	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker of the application.
func NewWorkers(repositories *store.Repositories, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewMonthlyUsageResetWorker(repositories.UserRepository, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
