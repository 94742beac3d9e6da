package handlers

import (
	"strconv"

	"github.com/devfolio/backend/internal/services"
	"github.com/devfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VideoHandler struct {
	videoService *services.VideoService
}

func NewVideoHandler(db *gorm.DB, cache *services.ContentCache) *VideoHandler {
	return &VideoHandler{
		videoService: services.NewVideoService(db, cache),
	}
}

// List returns all videos in display order
// GET /api/videos
func (h *VideoHandler) List(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"

	videos, err := h.videoService.GetAll(featuredOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, videos)
}

// GetByID returns a video by ID
// GET /api/admin/videos/:id
func (h *VideoHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid video id")
		return
	}

	video, err := h.videoService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, video)
}

// Create creates a new video
// POST /api/admin/videos
func (h *VideoHandler) Create(c *gin.Context) {
	var req services.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	video, err := h.videoService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, video)
}

// Update updates a video
// PUT /api/admin/videos/:id
func (h *VideoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid video id")
		return
	}

	var req services.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	video, err := h.videoService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, video)
}

// Delete deletes a video
// DELETE /api/admin/videos/:id
func (h *VideoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid video id")
		return
	}

	if err := h.videoService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "video deleted successfully"})
}
