package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-dashboard/internal/models"
	"github.com/yukikurage/task-dashboard/internal/repository"
)

func TestStats_SampleTasks(t *testing.T) {
	svc := newSeededService(t)

	// Pending due dates: 07-28, 07-29, 07-30, 08-01, 08-02.
	stats := svc.Stats(time.Date(2024, time.July, 29, 15, 0, 0, 0, time.UTC))

	assert.Equal(t, DashboardStats{
		Pending:           5,
		Overdue:           2,
		DueToday:          1,
		ApproachingBreach: 1,
	}, stats)
}

func TestStats_ApproachingBreachWindow(t *testing.T) {
	repo, err := repository.NewTaskRepository([]models.Task{
		{ID: "1", Status: models.TaskStatusPending, Priority: models.TaskPriorityLow, DueDate: "2024-07-27"},
		{ID: "2", Status: models.TaskStatusInProgress, Priority: models.TaskPriorityLow, DueDate: "2024-07-28"},
		{ID: "3", Status: models.TaskStatusPending, Priority: models.TaskPriorityLow, DueDate: "2024-07-29"},
		{ID: "4", Status: models.TaskStatusCompleted, Priority: models.TaskPriorityLow, DueDate: "2024-07-27"},
		{ID: "5", Status: models.TaskStatusPending, Priority: models.TaskPriorityLow, DueDate: "unknown"},
	})
	require.NoError(t, err)

	svc := NewTaskService(repo, nil, WithApproachingBreachDays(2))
	stats := svc.Stats(time.Date(2024, time.July, 26, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, 0, stats.Overdue)
	assert.Equal(t, 0, stats.DueToday)
	assert.Equal(t, 2, stats.ApproachingBreach)
}

func TestCurrentStats_UsesServiceClock(t *testing.T) {
	svc := newSeededService(t, WithClock(func() time.Time {
		return time.Date(2024, time.August, 1, 8, 0, 0, 0, time.UTC)
	}))

	stats := svc.CurrentStats()

	assert.Equal(t, 1, stats.DueToday)
	assert.Equal(t, 1, stats.ApproachingBreach)
	assert.Equal(t, 4, stats.Overdue)
}
