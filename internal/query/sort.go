package query

import (
	"slices"
	"strings"

	"github.com/yukikurage/task-dashboard/internal/models"
)

type SortField string

const (
	SortByCustomerName SortField = "customerName"
	SortByTaskID       SortField = "taskId"
	SortByTitle        SortField = "title"
	SortByStatus       SortField = "status"
	SortByPriority     SortField = "priority"
	SortByDueDate      SortField = "dueDate"
)

var SortFields = []SortField{
	SortByCustomerName,
	SortByTaskID,
	SortByTitle,
	SortByStatus,
	SortByPriority,
	SortByDueDate,
}

func (f SortField) Valid() bool {
	return slices.Contains(SortFields, f)
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

// Sort is the column and direction of the task table.
type Sort struct {
	Field SortField `json:"field"`
	Order SortOrder `json:"order"`
}

// DefaultSort is the table's initial ordering.
var DefaultSort = Sort{Field: SortByCustomerName, Order: SortAsc}

// ToggleSort returns the ordering after the user clicks on column field:
// the active column flips direction, any other column starts ascending.
func ToggleSort(current Sort, field SortField) Sort {
	if current.Field == field {
		if current.Order == SortAsc {
			return Sort{Field: field, Order: SortDesc}
		}
		return Sort{Field: field, Order: SortAsc}
	}
	return Sort{Field: field, Order: SortAsc}
}

// Compare orders two tasks by the sort column. String columns compare
// lower-cased. Due dates that parse compare as calendar dates and come
// before every unparseable one; unparseable due dates compare lower-cased
// among themselves. Desc negates the result, so equal keys stay equal in
// both directions.
func (s Sort) Compare(a, b *models.Task) int {
	c := compareField(s.Field, a, b)
	if s.Order == SortDesc {
		return -c
	}
	return c
}

func compareField(field SortField, a, b *models.Task) int {
	switch field {
	case SortByTaskID:
		return compareFold(a.TaskID, b.TaskID)
	case SortByTitle:
		return compareFold(a.Title, b.Title)
	case SortByStatus:
		return compareFold(string(a.Status), string(b.Status))
	case SortByPriority:
		return compareFold(string(a.Priority), string(b.Priority))
	case SortByDueDate:
		return compareDueDate(a.DueDate, b.DueDate)
	default:
		return compareFold(a.CustomerName, b.CustomerName)
	}
}

func compareDueDate(a, b string) int {
	da, okA := models.ParseCalendarDate(a)
	db, okB := models.ParseCalendarDate(b)
	switch {
	case okA && okB:
		return da.Compare(db)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return compareFold(a, b)
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
