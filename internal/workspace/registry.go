// Package workspace keeps one task collection per browser session. A
// workspace is created from the seed data on first use and discarded once
// it has been idle for longer than the configured timeout.
package workspace

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/yukikurage/task-dashboard/internal/repository"
	"github.com/yukikurage/task-dashboard/internal/seed"
	"github.com/yukikurage/task-dashboard/internal/services"
)

type entry struct {
	service  *services.TaskService
	lastSeen time.Time
}

// Registry maps workspace IDs to their task services.
type Registry struct {
	mu          sync.Mutex
	workspaces  map[string]*entry
	seed        *seed.Data
	idleTimeout time.Duration
	serviceOpts []services.Option
	now         func() time.Time
}

// NewRegistry creates a Registry seeding every workspace from data.
func NewRegistry(data *seed.Data, idleTimeout time.Duration, opts ...services.Option) *Registry {
	return &Registry{
		workspaces:  make(map[string]*entry),
		seed:        data,
		idleTimeout: idleTimeout,
		serviceOpts: opts,
		now:         time.Now,
	}
}

// Get returns the service for id, creating a freshly seeded one if needed.
func (r *Registry) Get(id string) (*services.TaskService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictIdle(now)

	if e, ok := r.workspaces[id]; ok {
		e.lastSeen = now
		return e.service, nil
	}

	repo, err := repository.NewTaskRepository(r.seed.Clone())
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	options := services.NewFilterOptions(r.seed.Owners, r.seed.Types)
	svc := services.NewTaskService(repo, options, r.serviceOpts...)

	r.workspaces[id] = &entry{service: svc, lastSeen: now}
	log.Printf("Workspace %s created with %d tasks (%d active)", id, repo.Count(), len(r.workspaces))
	return svc, nil
}

// Len returns the number of live workspaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

func (r *Registry) evictIdle(now time.Time) {
	if r.idleTimeout <= 0 {
		return
	}
	for id, e := range r.workspaces {
		if now.Sub(e.lastSeen) > r.idleTimeout {
			delete(r.workspaces, id)
			log.Printf("Workspace %s evicted after %s idle", id, r.idleTimeout)
		}
	}
}
