package models

type EventType string

const (
	EventTypeCreated   EventType = "created"
	EventTypeUpdated   EventType = "updated"
	EventTypeCompleted EventType = "completed"
	EventTypeCancelled EventType = "cancelled"
)

// Event is an audit-trail entry. Events are never edited once appended.
type Event struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Timestamp   string    `json:"timestamp" yaml:"timestamp"`
	Type        EventType `json:"type" yaml:"type"`
}

// Ticket is an externally sourced record linked to a task. It is read-only here.
type Ticket struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Status      string `json:"status" yaml:"status"`
	Priority    string `json:"priority" yaml:"priority"`
	Assignee    string `json:"assignee" yaml:"assignee"`
	CreatedDate string `json:"createdDate" yaml:"createdDate"`
}
