package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatusValid(t *testing.T) {
	for _, s := range TaskStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, TaskStatus("pending").Valid())
	assert.False(t, TaskStatus("").Valid())
	assert.False(t, TaskStatus("Done").Valid())
}

func TestTaskStatusOpen(t *testing.T) {
	assert.True(t, TaskStatusPending.Open())
	assert.True(t, TaskStatusInProgress.Open())
	assert.False(t, TaskStatusOverdue.Open())
	assert.False(t, TaskStatusCompleted.Open())
	assert.False(t, TaskStatusCancelled.Open())
}

func TestTaskPriorityValid(t *testing.T) {
	for _, p := range TaskPriorities {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, TaskPriority("Urgent").Valid())
	assert.False(t, TaskPriority("high").Valid())
}

func TestNoteTypeValid(t *testing.T) {
	assert.True(t, NoteTypeNote.Valid())
	assert.True(t, NoteTypeUpdate.Valid())
	assert.False(t, NoteType("comment").Valid())
}

func TestTaskNormalize(t *testing.T) {
	task := Task{ID: "1"}
	task.Normalize()

	assert.NotNil(t, task.Notes)
	assert.NotNil(t, task.Events)
	assert.NotNil(t, task.Tickets)
	assert.Empty(t, task.Notes)
}

func TestTaskCloneSharesNoBackingArrays(t *testing.T) {
	original := Task{
		ID:     "1",
		Title:  "Original",
		Notes:  []Note{{ID: "n1", Content: "first"}},
		Events: []Event{{ID: "e1", Type: EventTypeCreated}},
	}

	clone := original.Clone()
	clone.Title = "Changed"
	clone.Notes[0].Content = "edited"
	clone.Notes = append(clone.Notes, Note{ID: "n2"})
	clone.Events = append(clone.Events, Event{ID: "e2"})

	assert.Equal(t, "Original", original.Title)
	assert.Equal(t, "first", original.Notes[0].Content)
	assert.Len(t, original.Notes, 1)
	assert.Len(t, original.Events, 1)
	assert.NotNil(t, clone.Tickets)
}
