package handlers

import (
	"github.com/devfolio/backend/internal/services"
	"github.com/devfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SystemConfigHandler struct {
	configService *services.SystemConfigService
}

func NewSystemConfigHandler(db *gorm.DB) *SystemConfigHandler {
	return &SystemConfigHandler{
		configService: services.NewSystemConfigService(db),
	}
}

// GetNotificationConfig returns the notification settings. The SMTP password
// is reported only as set/unset.
// GET /api/admin/settings/notifications
func (h *SystemConfigHandler) GetNotificationConfig(c *gin.Context) {
	response.Success(c, h.configService.GetNotificationConfig())
}

// UpdateNotificationConfig updates the notification settings
// PUT /api/admin/settings/notifications
func (h *SystemConfigHandler) UpdateNotificationConfig(c *gin.Context) {
	var req services.UpdateNotificationConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.configService.UpdateNotificationConfig(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, h.configService.GetNotificationConfig())
}
