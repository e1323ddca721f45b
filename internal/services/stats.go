package services

import (
	"time"

	"github.com/yukikurage/task-dashboard/internal/models"
)

// DashboardStats backs the summary cards above the task table.
type DashboardStats struct {
	Pending           int `json:"pending"`
	Overdue           int `json:"overdue"`
	DueToday          int `json:"dueToday"`
	ApproachingBreach int `json:"approachingBreach"`
}

// Stats summarises the collection as of now. Overdue covers tasks already
// marked Overdue plus open tasks whose due date has passed. Approaching
// breach counts open tasks due in the next breachDays days, excluding today.
func (s *TaskService) Stats(now time.Time) DashboardStats {
	today := models.CalendarDay(now)
	horizon := today.AddDate(0, 0, s.breachDays)

	var stats DashboardStats
	for _, task := range s.taskRepo.List() {
		if task.Status == models.TaskStatusPending {
			stats.Pending++
		}
		if task.Status == models.TaskStatusOverdue {
			stats.Overdue++
			continue
		}
		if !task.Status.Open() {
			continue
		}

		due, ok := models.ParseCalendarDate(task.DueDate)
		if !ok {
			continue
		}
		switch {
		case due.Before(today):
			stats.Overdue++
		case due.Equal(today):
			stats.DueToday++
		case !due.After(horizon):
			stats.ApproachingBreach++
		}
	}
	return stats
}

// CurrentStats is Stats evaluated at the service clock.
func (s *TaskService) CurrentStats() DashboardStats {
	return s.Stats(s.now())
}
