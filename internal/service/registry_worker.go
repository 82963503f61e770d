package service

import (
	"context"
	"log"
	"time"

	"github.com/BlakeDanielson/CrowdWork/internal/repository"
)

// RegistryWorker is a periodic background job that evicts terminal tasks
// from the registry after their retention window. Nothing else ever
// deletes a task, so without the sweeper the registry grows forever.
type RegistryWorker struct {
	repo     *repository.TaskRepo
	interval time.Duration
	stopCh   chan struct{}
}

// NewRegistryWorker creates a worker that sweeps every interval.
func NewRegistryWorker(repo *repository.TaskRepo, interval time.Duration) *RegistryWorker {
	return &RegistryWorker{
		repo:     repo,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep loop. It runs one sweep immediately,
// then every interval.
func (w *RegistryWorker) Start(ctx context.Context) {
	log.Printf("registry-worker: starting (interval=%s)", w.interval)

	w.tick()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick()
		case <-ctx.Done():
			log.Println("registry-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("registry-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *RegistryWorker) Stop() {
	close(w.stopCh)
}

func (w *RegistryWorker) tick() {
	if removed := w.repo.Sweep(time.Now().UTC()); removed > 0 {
		log.Printf("registry-worker: evicted %d expired tasks, %d remaining", removed, w.repo.Len())
	}
}
