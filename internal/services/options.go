package services

import (
	"sync"

	"github.com/yukikurage/task-dashboard/internal/models"
)

// FilterOptions is the owner and type roster offered by the filter menus.
// It starts from a fixed list and grows with every value seen on a task.
type FilterOptions struct {
	mu     sync.RWMutex
	owners []string
	types  []string
}

// FilterOptionsSnapshot is a point-in-time copy of the menus.
type FilterOptionsSnapshot struct {
	Statuses   []models.TaskStatus   `json:"statuses"`
	Priorities []models.TaskPriority `json:"priorities"`
	Owners     []string              `json:"owners"`
	Types      []string              `json:"types"`
}

// NewFilterOptions creates a roster starting with the given owners and types.
func NewFilterOptions(owners, types []string) *FilterOptions {
	o := &FilterOptions{}
	for _, owner := range owners {
		o.owners = appendUnique(o.owners, owner)
	}
	for _, t := range types {
		o.types = appendUnique(o.types, t)
	}
	return o
}

// Observe adds owner and type to the roster if they are new.
func (o *FilterOptions) Observe(owner, taskType string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.owners = appendUnique(o.owners, owner)
	o.types = appendUnique(o.types, taskType)
}

// Snapshot returns copies of every menu.
func (o *FilterOptions) Snapshot() FilterOptionsSnapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return FilterOptionsSnapshot{
		Statuses:   append([]models.TaskStatus(nil), models.TaskStatuses...),
		Priorities: append([]models.TaskPriority(nil), models.TaskPriorities...),
		Owners:     append([]string{}, o.owners...),
		Types:      append([]string{}, o.types...),
	}
}

func appendUnique(values []string, v string) []string {
	if v == "" {
		return values
	}
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}
