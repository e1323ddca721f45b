package dto

import (
	"github.com/yukikurage/task-dashboard/internal/models"
	"github.com/yukikurage/task-dashboard/internal/query"
	"github.com/yukikurage/task-dashboard/internal/utils"
)

// TaskListResponse is one page of the filtered, sorted task view together
// with the status tab counts of the whole collection
type TaskListResponse struct {
	Tasks         []models.Task            `json:"tasks"`
	Counts        query.StatusCounts       `json:"counts"`
	Sort          query.Sort               `json:"sort"`
	ActiveFilters int                      `json:"activeFilters"`
	Pagination    utils.PaginationResponse `json:"pagination"`
}

// NoteResponse wraps a newly appended note
type NoteResponse struct {
	TaskID string      `json:"taskId"`
	Note   models.Note `json:"note"`
}

// ToTaskListResponse pages the result of q
func ToTaskListResponse(tasks []models.Task, counts query.StatusCounts, q query.Query, params utils.PaginationParams) TaskListResponse {
	page := utils.Paginate(tasks, params)
	for i := range page {
		page[i].Normalize()
	}

	return TaskListResponse{
		Tasks:         page,
		Counts:        counts,
		Sort:          q.Sort,
		ActiveFilters: q.Filters.Active(),
		Pagination:    utils.NewPaginationResponse(params, len(tasks)),
	}
}
