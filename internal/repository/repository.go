package repository

import (
	"errors"

	"github.com/yukikurage/task-dashboard/internal/models"
)

var (
	// ErrRecordNotFound is returned when no task has the requested ID.
	ErrRecordNotFound = errors.New("task repository: record not found")
	// ErrDuplicateID is returned when creating a task whose ID is already taken.
	ErrDuplicateID = errors.New("task repository: duplicate id")
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create appends a new task to the collection
	Create(task *models.Task) error

	// FindByID returns a copy of the task with the given ID
	FindByID(id string) (*models.Task, error)

	// List returns copies of all tasks in insertion order
	List() []models.Task

	// Update applies fn to a copy of the task and stores the copy only if fn succeeds
	Update(id string, fn func(task *models.Task) error) (*models.Task, error)

	// Count returns the number of stored tasks
	Count() int
}
