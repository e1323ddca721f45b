// Package query turns the task collection plus the dashboard's search,
// filter and sort state into the ordered view the task table renders.
package query

import (
	"slices"
	"strings"

	"github.com/yukikurage/task-dashboard/internal/models"
)

// AdvancedFilters holds the filter dimensions beyond the status tab.
// Every empty dimension is unrestricted.
type AdvancedFilters struct {
	Priorities []models.TaskPriority `json:"priority,omitempty"`
	Owners     []string              `json:"owner,omitempty"`
	Types      []string              `json:"type,omitempty"`
	DateRange  DateRange             `json:"dateRange"`
}

// Active reports how many dimensions currently restrict the view.
func (f AdvancedFilters) Active() int {
	n := 0
	if len(f.Priorities) > 0 {
		n++
	}
	if len(f.Owners) > 0 {
		n++
	}
	if len(f.Types) > 0 {
		n++
	}
	if start, end := f.DateRange.Bounds(); start != nil || end != nil {
		n++
	}
	return n
}

// Query is the full view state of the task table.
type Query struct {
	Search  string
	Status  StatusCategory
	Filters AdvancedFilters
	Sort    Sort
}

// Predicates returns the active predicates in pipeline order: search, status,
// then priority, owner, type and due-date range.
func (q Query) Predicates() []Predicate {
	var preds []Predicate
	if strings.TrimSpace(q.Search) != "" {
		preds = append(preds, Search(q.Search))
	}
	if q.Status != "" && q.Status != CategoryAll {
		preds = append(preds, Status(q.Status))
	}
	if len(q.Filters.Priorities) > 0 {
		preds = append(preds, Priorities(q.Filters.Priorities))
	}
	if len(q.Filters.Owners) > 0 {
		preds = append(preds, Owners(q.Filters.Owners))
	}
	if len(q.Filters.Types) > 0 {
		preds = append(preds, Types(q.Filters.Types))
	}
	if start, end := q.Filters.DateRange.Bounds(); start != nil || end != nil {
		preds = append(preds, DueWithin(q.Filters.DateRange))
	}
	return preds
}

// Run filters and sorts tasks. The result is a new slice; tasks is never
// reordered, and tasks with equal sort keys keep their input order.
func Run(tasks []models.Task, q Query) []models.Task {
	match := And(q.Predicates()...)

	result := make([]models.Task, 0, len(tasks))
	for i := range tasks {
		if match(&tasks[i]) {
			result = append(result, tasks[i])
		}
	}

	sort := q.Sort
	if sort.Field == "" {
		sort.Field = DefaultSort.Field
	}
	slices.SortStableFunc(result, func(a, b models.Task) int {
		return sort.Compare(&a, &b)
	})
	return result
}
