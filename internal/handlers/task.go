package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-dashboard/internal/dto"
	apierrors "github.com/yukikurage/task-dashboard/internal/errors"
	"github.com/yukikurage/task-dashboard/internal/middleware"
	"github.com/yukikurage/task-dashboard/internal/models"
	"github.com/yukikurage/task-dashboard/internal/query"
	"github.com/yukikurage/task-dashboard/internal/services"
	"github.com/yukikurage/task-dashboard/internal/utils"
	"github.com/yukikurage/task-dashboard/internal/validation"
)

type TaskHandler struct{}

func NewTaskHandler() *TaskHandler {
	return &TaskHandler{}
}

// ListTasks returns the filtered, sorted task view of the session
func (h *TaskHandler) ListTasks(c *gin.Context) {
	svc, ok := taskService(c)
	if !ok {
		return
	}

	type ListTasksQuery struct {
		Search   string   `form:"search"`
		Status   string   `form:"status" binding:"omitempty,status_category"`
		Priority []string `form:"priority"`
		Owner    []string `form:"owner"`
		Type     []string `form:"type"`
		DueFrom  string   `form:"due_from"`
		DueTo    string   `form:"due_to"`
		Sort     string   `form:"sort" binding:"omitempty,sort_field"`
		Order    string   `form:"order" binding:"omitempty,sort_order"`
	}

	var req ListTasksQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, "Invalid query parameters", err)
		return
	}

	status, _ := query.ParseStatusCategory(req.Status)

	priorities := make([]models.TaskPriority, 0, len(req.Priority))
	for _, p := range splitValues(req.Priority) {
		priority := models.TaskPriority(p)
		if !priority.Valid() {
			apierrors.BadRequest(c, services.ErrInvalidPriority.Error())
			return
		}
		priorities = append(priorities, priority)
	}

	sort := query.DefaultSort
	if req.Sort != "" {
		sort.Field = query.SortField(req.Sort)
	}
	if req.Order != "" {
		sort.Order = query.SortOrder(req.Order)
	}

	q := query.Query{
		Search: req.Search,
		Status: status,
		Filters: query.AdvancedFilters{
			Priorities: priorities,
			Owners:     splitValues(req.Owner),
			Types:      splitValues(req.Type),
			DateRange:  query.DateRange{Start: req.DueFrom, End: req.DueTo},
		},
		Sort: sort,
	}

	tasks := svc.ListTasks(q)
	params := utils.GetPaginationParams(c)

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, svc.CountByStatus(), q, params))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	svc, ok := taskService(c)
	if !ok {
		return
	}

	task, err := svc.GetTask(c.Param("id"))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	svc, ok := taskService(c)
	if !ok {
		return
	}

	type CreateTaskRequest struct {
		CustomerName string `json:"customerName" binding:"required"`
		CustomerCode string `json:"customerCode" binding:"required"`
		TaskID       string `json:"taskId" binding:"required"`
		Title        string `json:"title" binding:"required"`
		Description  string `json:"description" binding:"required"`
		Type         string `json:"type"`
		Owner        string `json:"owner"`
		Status       string `json:"status" binding:"omitempty,task_status"`
		Priority     string `json:"priority" binding:"omitempty,task_priority"`
		DueDate      string `json:"dueDate" binding:"required,calendar_date"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Invalid request body", err)
		return
	}

	task, err := svc.CreateTask(services.CreateTaskInput{
		CustomerName: strings.TrimSpace(req.CustomerName),
		CustomerCode: strings.TrimSpace(req.CustomerCode),
		TaskID:       strings.TrimSpace(req.TaskID),
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Type:         req.Type,
		Owner:        req.Owner,
		Status:       models.TaskStatus(req.Status),
		Priority:     models.TaskPriority(req.Priority),
		DueDate:      req.DueDate,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask merges the provided fields over an existing task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	svc, ok := taskService(c)
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		CustomerName *string `json:"customerName"`
		CustomerCode *string `json:"customerCode"`
		TaskID       *string `json:"taskId"`
		Title        *string `json:"title"`
		Description  *string `json:"description"`
		Type         *string `json:"type"`
		Owner        *string `json:"owner"`
		Status       *string `json:"status" binding:"omitempty,task_status"`
		Priority     *string `json:"priority" binding:"omitempty,task_priority"`
		DueDate      *string `json:"dueDate" binding:"omitempty,calendar_date"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Invalid request body", err)
		return
	}

	input := services.UpdateTaskInput{
		CustomerName: req.CustomerName,
		CustomerCode: req.CustomerCode,
		TaskID:       req.TaskID,
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Owner:        req.Owner,
		DueDate:      req.DueDate,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		input.Priority = &priority
	}

	task, err := svc.UpdateTask(c.Param("id"), input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// SetStatus changes the status of a task
func (h *TaskHandler) SetStatus(c *gin.Context) {
	svc, ok := taskService(c)
	if !ok {
		return
	}

	type SetStatusRequest struct {
		Status string `json:"status" binding:"required,task_status"`
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, services.ErrInvalidStatus.Error(), err)
		return
	}

	task, err := svc.SetStatus(c.Param("id"), models.TaskStatus(req.Status))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// SetPriority changes the priority of a task
func (h *TaskHandler) SetPriority(c *gin.Context) {
	svc, ok := taskService(c)
	if !ok {
		return
	}

	type SetPriorityRequest struct {
		Priority string `json:"priority" binding:"required,task_priority"`
	}

	var req SetPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, services.ErrInvalidPriority.Error(), err)
		return
	}

	task, err := svc.SetPriority(c.Param("id"), models.TaskPriority(req.Priority))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// AppendNote adds a note to a task
func (h *TaskHandler) AppendNote(c *gin.Context) {
	svc, ok := taskService(c)
	if !ok {
		return
	}

	type AppendNoteRequest struct {
		Content string `json:"content" binding:"required"`
		Author  string `json:"author"`
		Type    string `json:"type" binding:"omitempty,note_type"`
	}

	var req AppendNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "Invalid request body", err)
		return
	}

	taskID := c.Param("id")
	note, err := svc.AppendNote(taskID, services.NoteInput{
		Content: req.Content,
		Author:  req.Author,
		Type:    models.NoteType(req.Type),
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NoteResponse{TaskID: taskID, Note: *note})
}

// CountTasks returns the status tab counts
func (h *TaskHandler) CountTasks(c *gin.Context) {
	svc, ok := taskService(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, svc.CountByStatus())
}

// GetStats returns the dashboard summary cards
func (h *TaskHandler) GetStats(c *gin.Context) {
	svc, ok := taskService(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, svc.CurrentStats())
}

// GetOptions returns the values offered by the filter menus
func (h *TaskHandler) GetOptions(c *gin.Context) {
	svc, ok := taskService(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, svc.Options())
}

func taskService(c *gin.Context) (*services.TaskService, bool) {
	svc, ok := middleware.GetTaskService(c)
	if !ok {
		apierrors.InternalError(c, "Workspace not found in context")
		return nil, false
	}
	return svc, true
}

// splitValues accepts both repeated and comma-separated query values
func splitValues(values []string) []string {
	var result []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

// respondBindError reports rule violations per field; anything else is a malformed request
func respondBindError(c *gin.Context, message string, err error) {
	if details := validation.FieldErrors(err); details != nil {
		apierrors.BadRequestWithDetails(c, message, details)
		return
	}
	apierrors.InvalidFormat(c, err.Error())
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidNoteType),
		errors.Is(err, services.ErrNoteContentRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		workspaceID, _ := middleware.GetWorkspaceID(c)
		log.Printf("Task operation failed in workspace %s: %v", workspaceID, err)
		apierrors.InternalError(c, "Internal server error")
	}
}
