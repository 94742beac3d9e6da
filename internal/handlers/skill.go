package handlers

import (
	"strconv"

	"github.com/devfolio/backend/internal/services"
	"github.com/devfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SkillHandler struct {
	skillService *services.SkillService
}

func NewSkillHandler(db *gorm.DB, cache *services.ContentCache) *SkillHandler {
	return &SkillHandler{
		skillService: services.NewSkillService(db, cache),
	}
}

// List returns all skills in display order
// GET /api/skills
func (h *SkillHandler) List(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		skills, err := h.skillService.GetByCategory(category)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, skills)
		return
	}

	skills, err := h.skillService.GetAll()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, skills)
}

// GetByID returns a skill by ID
// GET /api/admin/skills/:id
func (h *SkillHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid skill id")
		return
	}

	skill, err := h.skillService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, skill)
}

// Create creates a new skill
// POST /api/admin/skills
func (h *SkillHandler) Create(c *gin.Context) {
	var req services.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	skill, err := h.skillService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, skill)
}

// Update updates a skill
// PUT /api/admin/skills/:id
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid skill id")
		return
	}

	var req services.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	skill, err := h.skillService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, skill)
}

// Delete deletes a skill
// DELETE /api/admin/skills/:id
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid skill id")
		return
	}

	if err := h.skillService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "skill deleted successfully"})
}
