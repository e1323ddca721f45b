package models

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusOverdue    TaskStatus = "Overdue"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusCancelled  TaskStatus = "Cancelled"
)

// TaskStatuses lists every status in display order.
var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusOverdue,
	TaskStatusCompleted,
	TaskStatusCancelled,
}

// Valid reports whether s is one of the enumerated statuses.
func (s TaskStatus) Valid() bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Open reports whether work on the task is still outstanding.
func (s TaskStatus) Open() bool {
	return s == TaskStatusPending || s == TaskStatusInProgress
}

type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "Low"
	TaskPriorityMedium   TaskPriority = "Medium"
	TaskPriorityHigh     TaskPriority = "High"
	TaskPriorityCritical TaskPriority = "Critical"
)

var TaskPriorities = []TaskPriority{
	TaskPriorityLow,
	TaskPriorityMedium,
	TaskPriorityHigh,
	TaskPriorityCritical,
}

// Valid reports whether p is one of the enumerated priorities.
func (p TaskPriority) Valid() bool {
	for _, v := range TaskPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// Task is a customer-linked work item shown on the dashboard.
// DueDate and CreatedDate hold ISO 8601 date or date-time strings.
type Task struct {
	ID           string       `json:"id" yaml:"id"`
	CustomerName string       `json:"customerName" yaml:"customerName"`
	CustomerCode string       `json:"customerCode" yaml:"customerCode"`
	TaskID       string       `json:"taskId" yaml:"taskId"`
	Title        string       `json:"title" yaml:"title"`
	Status       TaskStatus   `json:"status" yaml:"status"`
	Priority     TaskPriority `json:"priority" yaml:"priority"`
	Type         string       `json:"type" yaml:"type"`
	Description  string       `json:"description" yaml:"description"`
	DueDate      string       `json:"dueDate" yaml:"dueDate"`
	CreatedDate  string       `json:"createdDate" yaml:"createdDate"`
	Owner        string       `json:"owner" yaml:"owner"`

	// Relations
	Notes   []Note   `json:"notes" yaml:"notes"`
	Events  []Event  `json:"events" yaml:"events"`
	Tickets []Ticket `json:"tickets" yaml:"tickets"`
}

// Normalize replaces absent collections with empty ones.
func (t *Task) Normalize() {
	if t.Notes == nil {
		t.Notes = []Note{}
	}
	if t.Events == nil {
		t.Events = []Event{}
	}
	if t.Tickets == nil {
		t.Tickets = []Ticket{}
	}
}

// Clone returns a copy that shares no backing arrays with t.
func (t Task) Clone() Task {
	c := t
	c.Notes = append(make([]Note, 0, len(t.Notes)), t.Notes...)
	c.Events = append(make([]Event, 0, len(t.Events)), t.Events...)
	c.Tickets = append(make([]Ticket, 0, len(t.Tickets)), t.Tickets...)
	return c
}
