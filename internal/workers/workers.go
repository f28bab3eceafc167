package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/fractal-cipher/internal/config"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds every background worker enabled in cfg.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.RetentionMaxAge > 0 {
		w.workers = append(w.workers, NewRetentionWorker(services.ArtifactService, cfg.RetentionInterval, cfg.RetentionMaxAge, logger))
	}
	return w
}

// Run starts every worker on its own goroutine and blocks until all of
// them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
