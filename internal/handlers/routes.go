package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-dashboard/internal/middleware"
	"github.com/yukikurage/task-dashboard/internal/workspace"
)

// RegisterTaskRoutes mounts the task endpoints under api
func RegisterTaskRoutes(api *gin.RouterGroup, registry *workspace.Registry) {
	taskHandler := NewTaskHandler()

	tasks := api.Group("/tasks")
	tasks.Use(middleware.RequireWorkspace(registry))
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/counts", taskHandler.CountTasks)
		tasks.GET("/stats", taskHandler.GetStats)
		tasks.GET("/options", taskHandler.GetOptions)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.PUT("/:id/status", taskHandler.SetStatus)
		tasks.PUT("/:id/priority", taskHandler.SetPriority)
		tasks.POST("/:id/notes", taskHandler.AppendNote)
	}
}
