package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-dashboard/internal/models"
	"github.com/yukikurage/task-dashboard/internal/query"
	"github.com/yukikurage/task-dashboard/internal/services"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListJSON(t *testing.T) {
	out, err := run(t, "list", "--json", "--status", "Pending", "--priority", "High,Critical", "--sort", "dueDate")
	require.NoError(t, err)

	var tasks []models.Task
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))

	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	assert.Equal(t, []string{"6", "8", "5", "4", "7"}, ids)
}

func TestListTable(t *testing.T) {
	out, err := run(t, "list", "--search", "hello")
	require.NoError(t, err)

	assert.Contains(t, out, "TASK ID")
	assert.Contains(t, out, "TS-6474")
	assert.NotContains(t, out, "TS-6465")
}

func TestListRejectsUnknownValues(t *testing.T) {
	_, err := run(t, "list", "--status", "archived")
	assert.Error(t, err)

	_, err = run(t, "list", "--priority", "Urgent")
	assert.Error(t, err)

	_, err = run(t, "list", "--sort", "owner")
	assert.Error(t, err)
}

func TestCountsJSON(t *testing.T) {
	out, err := run(t, "counts", "--json")
	require.NoError(t, err)

	var counts query.StatusCounts
	require.NoError(t, json.Unmarshal([]byte(out), &counts))
	assert.Equal(t, 9, counts.All)
	assert.Equal(t, 5, counts.Pending)
}

func TestStatsJSON(t *testing.T) {
	out, err := run(t, "stats", "--json", "--today", "2024-07-29")
	require.NoError(t, err)

	var stats services.DashboardStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, services.DashboardStats{Pending: 5, Overdue: 2, DueToday: 1, ApproachingBreach: 1}, stats)

	_, err = run(t, "stats", "--today", "tomorrow")
	assert.Error(t, err)
}
