package query

import "github.com/yukikurage/task-dashboard/internal/models"

// StatusCounts labels the status tabs. Counts always cover the whole
// collection, whatever the current view.
type StatusCounts struct {
	All        int `json:"all"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	Overdue    int `json:"overdue"`
	Cancelled  int `json:"cancelled"`
	InProgress int `json:"inProgress"`
}

// CountByStatus tallies tasks per status. Status values are matched exactly.
func CountByStatus(tasks []models.Task) StatusCounts {
	counts := StatusCounts{All: len(tasks)}
	for i := range tasks {
		switch tasks[i].Status {
		case models.TaskStatusCompleted:
			counts.Completed++
		case models.TaskStatusPending:
			counts.Pending++
		case models.TaskStatusOverdue:
			counts.Overdue++
		case models.TaskStatusCancelled:
			counts.Cancelled++
		case models.TaskStatusInProgress:
			counts.InProgress++
		}
	}
	return counts
}
