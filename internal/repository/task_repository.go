package repository

import (
	"fmt"
	"sync"

	"github.com/yukikurage/task-dashboard/internal/models"
)

// MemoryTaskRepository is an in-memory implementation of TaskRepository.
// Tasks are kept in insertion order; every read and write goes through a copy
// so callers never hold references into the stored collection.
type MemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks []models.Task
	index map[string]int
}

// NewTaskRepository creates a TaskRepository holding the given tasks
func NewTaskRepository(seed []models.Task) (TaskRepository, error) {
	r := &MemoryTaskRepository{
		tasks: make([]models.Task, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}
	for i := range seed {
		task := seed[i]
		if err := r.Create(&task); err != nil {
			return nil, fmt.Errorf("failed to seed task %q: %w", task.ID, err)
		}
	}
	return r, nil
}

// Create appends a new task
func (r *MemoryTaskRepository) Create(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[task.ID]; exists {
		return ErrDuplicateID
	}

	task.Normalize()
	r.index[task.ID] = len(r.tasks)
	r.tasks = append(r.tasks, task.Clone())
	return nil
}

// FindByID finds a task by ID
func (r *MemoryTaskRepository) FindByID(id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	task := r.tasks[i].Clone()
	return &task, nil
}

// List returns all tasks in insertion order
func (r *MemoryTaskRepository) List() []models.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]models.Task, len(r.tasks))
	for i, t := range r.tasks {
		tasks[i] = t.Clone()
	}
	return tasks
}

// Update runs fn against a copy of the stored task. The copy replaces the
// stored task only when fn returns nil; the ID cannot be changed.
func (r *MemoryTaskRepository) Update(id string, fn func(task *models.Task) error) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, ErrRecordNotFound
	}

	working := r.tasks[i].Clone()
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.ID = id
	working.Normalize()

	r.tasks[i] = working
	result := working.Clone()
	return &result, nil
}

// Count returns the number of tasks
func (r *MemoryTaskRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}
