package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Status   string `validate:"omitempty,task_status"`
	Priority string `validate:"omitempty,task_priority"`
	NoteType string `validate:"omitempty,note_type"`
	Sort     string `validate:"omitempty,sort_field"`
	Order    string `validate:"omitempty,sort_order"`
	Category string `validate:"omitempty,status_category"`
	Due      string `validate:"omitempty,calendar_date"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterOn(v))
	return v
}

func TestRegisterOn_AcceptsValidValues(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(sample{
		Status:   "In Progress",
		Priority: "Critical",
		NoteType: "update",
		Sort:     "dueDate",
		Order:    "desc",
		Category: "PENDING",
		Due:      "2024-07-25T10:00:00Z",
	})

	assert.NoError(t, err)
	assert.NoError(t, v.Struct(sample{}))
}

func TestRegisterOn_RejectsInvalidValues(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(sample{
		Status:   "Done",
		Priority: "Urgent",
		NoteType: "comment",
		Sort:     "owner",
		Order:    "up",
		Category: "archived",
		Due:      "25/07/2024",
	})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"Status":   "task_status",
		"Priority": "task_priority",
		"NoteType": "note_type",
		"Sort":     "sort_field",
		"Order":    "sort_order",
		"Category": "status_category",
		"Due":      "calendar_date",
	}, FieldErrors(err))
}

func TestRegister_Idempotent(t *testing.T) {
	assert.NoError(t, Register())
	assert.NoError(t, Register())
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
