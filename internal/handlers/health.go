package handlers

import (
	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports the status of the service and its subsystems.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// CheckHealth returns the health status of all subsystems.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	// Database check
	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	// Queue mode
	taskQueue := services.GetTaskQueue()
	queueMode := "sync"
	if taskQueue != nil && taskQueue.IsAsync() {
		queueMode = "async (Redis)"
	}

	// Unread inbox size
	var unreadCount int64
	models.GetDB().Model(&models.Contact{}).
		Where("read = ?", false).
		Count(&unreadCount)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "devfolio",
		"components": gin.H{
			"database":        dbStatus,
			"queue_mode":      queueMode,
			"unread_contacts": unreadCount,
		},
	})
}
