package query

import (
	"strings"
	"time"

	"github.com/yukikurage/task-dashboard/internal/models"
)

// Predicate reports whether a task belongs in a view.
type Predicate func(task *models.Task) bool

// And combines predicates; a task must satisfy all of them.
func And(preds ...Predicate) Predicate {
	return func(task *models.Task) bool {
		for _, p := range preds {
			if !p(task) {
				return false
			}
		}
		return true
	}
}

// MatchAll accepts every task.
func MatchAll(*models.Task) bool { return true }

// Search matches tasks whose customer name, task code, title, description or
// owner contains q, ignoring case. A blank query matches everything.
func Search(q string) Predicate {
	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return MatchAll
	}
	return func(task *models.Task) bool {
		for _, field := range []string{task.CustomerName, task.TaskID, task.Title, task.Description, task.Owner} {
			if strings.Contains(strings.ToLower(field), needle) {
				return true
			}
		}
		return false
	}
}

// StatusCategory is the primary tab selection on the dashboard. Any status
// name is a category; All disables the dimension.
type StatusCategory string

const (
	CategoryAll        StatusCategory = "all"
	CategoryPending    StatusCategory = "pending"
	CategoryInProgress StatusCategory = "in progress"
	CategoryOverdue    StatusCategory = "overdue"
	CategoryCompleted  StatusCategory = "completed"
	CategoryCancelled  StatusCategory = "cancelled"
)

// ParseStatusCategory accepts "all" or any task status name, case-insensitively.
// An empty string means All.
func ParseStatusCategory(s string) (StatusCategory, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, true
	}
	for _, status := range models.TaskStatuses {
		if strings.EqualFold(s, string(status)) {
			return StatusCategory(strings.ToLower(string(status))), true
		}
	}
	return "", false
}

// Status matches tasks whose status equals the category, ignoring case.
func Status(category StatusCategory) Predicate {
	if category == "" || strings.EqualFold(string(category), string(CategoryAll)) {
		return MatchAll
	}
	return func(task *models.Task) bool {
		return strings.EqualFold(string(task.Status), string(category))
	}
}

// Priorities matches tasks whose priority is in the set. An empty set matches everything.
func Priorities(set []models.TaskPriority) Predicate {
	if len(set) == 0 {
		return MatchAll
	}
	return func(task *models.Task) bool {
		for _, p := range set {
			if task.Priority == p {
				return true
			}
		}
		return false
	}
}

// Owners matches tasks whose owner is in the set. An empty set matches everything.
func Owners(set []string) Predicate {
	return memberOf(set, func(task *models.Task) string { return task.Owner })
}

// Types matches tasks whose type is in the set. An empty set matches everything.
func Types(set []string) Predicate {
	return memberOf(set, func(task *models.Task) string { return task.Type })
}

func memberOf(set []string, field func(*models.Task) string) Predicate {
	if len(set) == 0 {
		return MatchAll
	}
	members := make(map[string]struct{}, len(set))
	for _, v := range set {
		members[v] = struct{}{}
	}
	return func(task *models.Task) bool {
		_, ok := members[field(task)]
		return ok
	}
}

// DateRange bounds the due date, both ends inclusive. Bounds are raw user
// input; an empty or unparseable bound is treated as absent.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Bounds returns the parsed bounds; a nil pointer means no bound.
func (r DateRange) Bounds() (start, end *time.Time) {
	if d, ok := models.ParseCalendarDate(r.Start); ok {
		start = &d
	}
	if d, ok := models.ParseCalendarDate(r.End); ok {
		end = &d
	}
	return start, end
}

// DueWithin matches tasks whose due date falls inside the range. Both the
// bounds and the due date are compared as UTC calendar dates. When a bound is
// active, a task whose due date cannot be parsed is excluded.
func DueWithin(r DateRange) Predicate {
	start, end := r.Bounds()
	if start == nil && end == nil {
		return MatchAll
	}
	return func(task *models.Task) bool {
		due, ok := models.ParseCalendarDate(task.DueDate)
		if !ok {
			return false
		}
		if start != nil && due.Before(*start) {
			return false
		}
		if end != nil && due.After(*end) {
			return false
		}
		return true
	}
}
