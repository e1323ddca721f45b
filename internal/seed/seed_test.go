package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-dashboard/internal/models"
)

func TestDefault(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	require.Len(t, data.Tasks, 9)
	assert.Contains(t, data.Owners, "Rishi")
	assert.Contains(t, data.Types, "Health Impact")

	first := data.Tasks[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "TS-6465", first.TaskID)
	assert.Equal(t, models.TaskStatusCancelled, first.Status)
	assert.Equal(t, "2024-07-23", first.DueDate)
	require.Len(t, first.Notes, 1)
	assert.Equal(t, models.NoteTypeNote, first.Notes[0].Type)

	for _, task := range data.Tasks {
		assert.NotNil(t, task.Notes, task.ID)
		assert.NotNil(t, task.Events, task.ID)
		assert.NotNil(t, task.Tickets, task.ID)
	}
}

func TestClone(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	tasks := data.Clone()
	tasks[0].Title = "Changed"
	tasks[0].Notes[0].Content = "Changed"

	assert.Equal(t, "Test task", data.Tasks[0].Title)
	assert.Equal(t, "Task assigned to team", data.Tasks[0].Notes[0].Content)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		msg  string
	}{
		{
			name: "malformed yaml",
			raw:  "tasks: [",
			msg:  "failed to parse seed data",
		},
		{
			name: "missing id",
			raw:  "tasks:\n  - title: x\n    status: Pending\n    priority: Low\n",
			msg:  "id is required",
		},
		{
			name: "duplicate id",
			raw:  "tasks:\n  - id: \"1\"\n    status: Pending\n    priority: Low\n  - id: \"1\"\n    status: Pending\n    priority: Low\n",
			msg:  "duplicate id",
		},
		{
			name: "bad status",
			raw:  "tasks:\n  - id: \"1\"\n    status: Done\n    priority: Low\n",
			msg:  "invalid status",
		},
		{
			name: "bad priority",
			raw:  "tasks:\n  - id: \"1\"\n    status: Pending\n    priority: Urgent\n",
			msg:  "invalid priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
