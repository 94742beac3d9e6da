package handlers

import (
	"strconv"

	"github.com/devfolio/backend/internal/middleware"
	"github.com/devfolio/backend/internal/services"
	"github.com/devfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	uploadService  *services.UploadService
}

func NewProjectHandler(db *gorm.DB, cache *services.ContentCache, upload *services.UploadService) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(db, cache),
		uploadService:  upload,
	}
}

// ListPublic returns all projects for the public site
// GET /api/projects
func (h *ProjectHandler) ListPublic(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"

	projects, err := h.projectService.GetAll(featuredOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, projects)
}

// List returns paginated projects for the back-office
// GET /api/admin/projects
func (h *ProjectHandler) List(c *gin.Context) {
	var req services.ProjectListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.projectService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

// GetByID returns a project by ID
// GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	project, err := h.projectService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

// Create creates a new project. The image is part of the multipart form and
// is required.
// POST /api/admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var imageURL string
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = h.uploadService.SaveImage(file)
		if err != nil {
			response.Error(c, err)
			return
		}
	}

	userID := middleware.GetUserID(c)
	project, err := h.projectService.Create(&req, imageURL, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, project)
}

// Update updates a project. A new image in the form replaces the stored one.
// PUT /api/admin/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req services.UpdateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var imageURL string
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = h.uploadService.SaveImage(file)
		if err != nil {
			response.Error(c, err)
			return
		}
	}

	project, err := h.projectService.Update(uint(id), &req, imageURL)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

// Delete deletes a project
// DELETE /api/admin/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	if err := h.projectService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "project deleted successfully"})
}
