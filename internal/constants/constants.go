package constants

import "time"

// Session and context keys
const (
	SessionCookieName        = "task_dashboard_session"
	SessionKeyWorkspaceID    = "workspace_id"
	ContextKeyWorkspaceID    = "workspace_id"
	ContextKeyTaskService    = "task_service"
	SessionStoreCookie       = "cookie"
	SessionStoreRedis        = "redis"
	SessionMaxAge            = 86400 // 1 day
	DefaultWorkspaceIdleTime = 2 * time.Hour
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// Tasks
const (
	DefaultApproachingBreachDays = 2
	DefaultNoteAuthor            = "Current User"
)
