package middleware

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/task-dashboard/internal/constants"
	apierrors "github.com/yukikurage/task-dashboard/internal/errors"
	"github.com/yukikurage/task-dashboard/internal/services"
	"github.com/yukikurage/task-dashboard/internal/workspace"
)

// RequireWorkspace binds the request to the task collection of its browser
// session, starting a new seeded workspace for sessions without one.
func RequireWorkspace(registry *workspace.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		workspaceID, _ := session.Get(constants.SessionKeyWorkspaceID).(string)
		if workspaceID == "" {
			workspaceID = uuid.NewString()
			session.Set(constants.SessionKeyWorkspaceID, workspaceID)
			if err := session.Save(); err != nil {
				log.Printf("Failed to save session: %v", err)
				apierrors.InternalError(c, "Failed to start session")
				return
			}
		}

		svc, err := registry.Get(workspaceID)
		if err != nil {
			log.Printf("Failed to load workspace %s: %v", workspaceID, err)
			apierrors.ServiceUnavailable(c, "Workspace unavailable")
			return
		}

		c.Set(constants.ContextKeyWorkspaceID, workspaceID)
		c.Set(constants.ContextKeyTaskService, svc)
		c.Next()
	}
}

// GetTaskService retrieves the session's task service from context
func GetTaskService(c *gin.Context) (*services.TaskService, bool) {
	value, exists := c.Get(constants.ContextKeyTaskService)
	if !exists {
		return nil, false
	}
	svc, ok := value.(*services.TaskService)
	return svc, ok && svc != nil
}

// GetWorkspaceID retrieves the session's workspace ID from context
func GetWorkspaceID(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyWorkspaceID)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	return id, ok
}
