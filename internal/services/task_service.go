package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/task-dashboard/internal/constants"
	"github.com/yukikurage/task-dashboard/internal/models"
	"github.com/yukikurage/task-dashboard/internal/query"
	"github.com/yukikurage/task-dashboard/internal/repository"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidStatus       = errors.New("status must be one of Pending, In Progress, Overdue, Completed, Cancelled")
	ErrInvalidPriority     = errors.New("priority must be one of Low, Medium, High, Critical")
	ErrInvalidNoteType     = errors.New("note type must be note or update")
	ErrNoteContentRequired = errors.New("note content is required")
)

// TaskService owns the task collection of one dashboard session. Mutations
// go through the repository's copy-and-commit update, so a rejected change
// leaves the collection untouched.
type TaskService struct {
	taskRepo   repository.TaskRepository
	options    *FilterOptions
	breachDays int
	now        func() time.Time
	newID      func() string
}

// Option customises a TaskService.
type Option func(*TaskService)

// WithClock replaces time.Now, used for timestamps and stats.
func WithClock(now func() time.Time) Option {
	return func(s *TaskService) { s.now = now }
}

// WithIDGenerator replaces the UUID generator for tasks, notes and events.
func WithIDGenerator(newID func() string) Option {
	return func(s *TaskService) { s.newID = newID }
}

// WithApproachingBreachDays sets how many days ahead an open task counts as approaching breach.
func WithApproachingBreachDays(days int) Option {
	return func(s *TaskService) { s.breachDays = days }
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, options *FilterOptions, opts ...Option) *TaskService {
	if options == nil {
		options = NewFilterOptions(nil, nil)
	}
	s := &TaskService{
		taskRepo:   taskRepo,
		options:    options,
		breachDays: constants.DefaultApproachingBreachDays,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, task := range taskRepo.List() {
		s.options.Observe(task.Owner, task.Type)
	}
	return s
}

// CreateTaskInput holds every caller-supplied task field. ID, created date
// and the note, event and ticket collections are assigned by CreateTask.
type CreateTaskInput struct {
	CustomerName string
	CustomerCode string
	TaskID       string
	Title        string
	Description  string
	Type         string
	Owner        string
	Status       models.TaskStatus
	Priority     models.TaskPriority
	DueDate      string
}

// UpdateTaskInput is a partial update; nil fields are left unchanged.
type UpdateTaskInput struct {
	CustomerName *string
	CustomerCode *string
	TaskID       *string
	Title        *string
	Description  *string
	Type         *string
	Owner        *string
	Status       *models.TaskStatus
	Priority     *models.TaskPriority
	DueDate      *string
}

// NoteInput represents input for appending a note
type NoteInput struct {
	Content string
	Author  string
	Type    models.NoteType
}

// ListTasks runs the query engine over the current collection
func (s *TaskService) ListTasks(q query.Query) []models.Task {
	return query.Run(s.taskRepo.List(), q)
}

// CountByStatus returns the status tab counts for the whole collection
func (s *TaskService) CountByStatus() query.StatusCounts {
	return query.CountByStatus(s.taskRepo.List())
}

// GetTask returns a task by ID
func (s *TaskService) GetTask(id string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateTask assigns an ID and created date, seeds a created event and appends the task.
// Empty status and priority default to Pending and Medium.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Status == "" {
		input.Status = models.TaskStatusPending
	}
	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	stamp := s.timestamp()
	task := &models.Task{
		ID:           s.newID(),
		CustomerName: input.CustomerName,
		CustomerCode: input.CustomerCode,
		TaskID:       input.TaskID,
		Title:        input.Title,
		Status:       input.Status,
		Priority:     input.Priority,
		Type:         input.Type,
		Description:  input.Description,
		DueDate:      input.DueDate,
		CreatedDate:  stamp,
		Owner:        input.Owner,
		Notes:        []models.Note{},
		Events: []models.Event{{
			ID:          s.newID(),
			Title:       "Task Created",
			Description: "Task was created and assigned",
			Timestamp:   stamp,
			Type:        models.EventTypeCreated,
		}},
		Tickets: []models.Ticket{},
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	s.options.Observe(task.Owner, task.Type)

	return s.GetTask(task.ID)
}

// UpdateTask merges the provided fields over the task. No event is recorded.
func (s *TaskService) UpdateTask(id string, input UpdateTaskInput) (*models.Task, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	task, err := s.update(id, func(task *models.Task) error {
		assign(&task.CustomerName, input.CustomerName)
		assign(&task.CustomerCode, input.CustomerCode)
		assign(&task.TaskID, input.TaskID)
		assign(&task.Title, input.Title)
		assign(&task.Description, input.Description)
		assign(&task.Type, input.Type)
		assign(&task.Owner, input.Owner)
		assign(&task.DueDate, input.DueDate)
		if input.Status != nil {
			task.Status = *input.Status
		}
		if input.Priority != nil {
			task.Priority = *input.Priority
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.options.Observe(task.Owner, task.Type)
	return task, nil
}

// SetStatus changes the status and records an event when the value changes
func (s *TaskService) SetStatus(id string, status models.TaskStatus) (*models.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	return s.update(id, func(task *models.Task) error {
		if task.Status == status {
			return nil
		}
		previous := task.Status
		task.Status = status
		task.Events = append(task.Events, s.statusEvent(previous, status))
		return nil
	})
}

// SetPriority changes the priority and records an event when the value changes
func (s *TaskService) SetPriority(id string, priority models.TaskPriority) (*models.Task, error) {
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	return s.update(id, func(task *models.Task) error {
		if task.Priority == priority {
			return nil
		}
		previous := task.Priority
		task.Priority = priority
		task.Events = append(task.Events, models.Event{
			ID:          s.newID(),
			Title:       "Priority Changed",
			Description: fmt.Sprintf("Priority changed from %s to %s", previous, priority),
			Timestamp:   s.timestamp(),
			Type:        models.EventTypeUpdated,
		})
		return nil
	})
}

// AppendNote adds a note after the existing ones
func (s *TaskService) AppendNote(id string, input NoteInput) (*models.Note, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrNoteContentRequired
	}
	if input.Type == "" {
		input.Type = models.NoteTypeNote
	}
	if !input.Type.Valid() {
		return nil, ErrInvalidNoteType
	}
	if strings.TrimSpace(input.Author) == "" {
		input.Author = constants.DefaultNoteAuthor
	}

	note := models.Note{
		ID:        s.newID(),
		Content:   input.Content,
		Author:    input.Author,
		Timestamp: s.timestamp(),
		Type:      input.Type,
	}

	if _, err := s.update(id, func(task *models.Task) error {
		task.Notes = append(task.Notes, note)
		return nil
	}); err != nil {
		return nil, err
	}

	return &note, nil
}

// Options returns the values offered by the advanced filter menus
func (s *TaskService) Options() FilterOptionsSnapshot {
	return s.options.Snapshot()
}

func (s *TaskService) update(id string, fn func(task *models.Task) error) (*models.Task, error) {
	task, err := s.taskRepo.Update(id, fn)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

func (s *TaskService) statusEvent(from, to models.TaskStatus) models.Event {
	event := models.Event{
		ID:          s.newID(),
		Title:       "Status Changed",
		Description: fmt.Sprintf("Status changed from %s to %s", from, to),
		Timestamp:   s.timestamp(),
		Type:        models.EventTypeUpdated,
	}
	switch to {
	case models.TaskStatusCompleted:
		event.Title = "Task Completed"
		event.Type = models.EventTypeCompleted
	case models.TaskStatusCancelled:
		event.Title = "Task Cancelled"
		event.Type = models.EventTypeCancelled
	}
	return event
}

func (s *TaskService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
