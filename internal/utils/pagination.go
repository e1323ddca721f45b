package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-dashboard/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse represents the pagination metadata in API responses
type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPageSize)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))
	return NewPaginationParams(page, limit)
}

// NewPaginationParams clamps page and limit to the allowed range
func NewPaginationParams(page, limit int) PaginationParams {
	if page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Paginate returns the page of items selected by params
func Paginate[T any](items []T, params PaginationParams) []T {
	if params.Offset >= len(items) {
		return []T{}
	}
	end := params.Offset + params.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[params.Offset:end]
}

// NewPaginationResponse builds the pagination metadata for total items
func NewPaginationResponse(params PaginationParams, total int) PaginationResponse {
	totalPages := total / params.Limit
	if total%params.Limit > 0 {
		totalPages++
	}
	return PaginationResponse{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
