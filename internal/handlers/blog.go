package handlers

import (
	"strconv"

	"github.com/devfolio/backend/internal/middleware"
	"github.com/devfolio/backend/internal/services"
	"github.com/devfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BlogHandler struct {
	blogService   *services.BlogService
	uploadService *services.UploadService
}

func NewBlogHandler(db *gorm.DB, cache *services.ContentCache, upload *services.UploadService) *BlogHandler {
	return &BlogHandler{
		blogService:   services.NewBlogService(db, cache),
		uploadService: upload,
	}
}

// ListPublic returns published posts. Admins browsing with a token also see
// drafts when they ask for them via the admin listing, not here.
// GET /api/blogs
func (h *BlogHandler) ListPublic(c *gin.Context) {
	var req services.BlogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.blogService.List(&req, false)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

// Featured returns the latest published posts for the landing page
// GET /api/blogs/featured
func (h *BlogHandler) Featured(c *gin.Context) {
	blogs, err := h.blogService.Featured()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, blogs)
}

// GetBySlug returns a single post by slug or numeric id. Drafts resolve only
// for admins; everyone else gets the same not-found as for a missing post.
// GET /api/blogs/:slug
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	includeDrafts := middleware.IsAdmin(c)

	// A numeric param is an id lookup. All-digit slugs are still valid, so
	// fall through to the slug lookup when no post has that id.
	if id, err := strconv.ParseUint(slug, 10, 32); err == nil {
		blog, err := h.blogService.GetByID(uint(id), includeDrafts)
		if err == nil {
			response.Success(c, blog)
			return
		}
	}

	blog, err := h.blogService.GetBySlug(slug, includeDrafts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, blog)
}

// List returns paginated posts including drafts
// GET /api/admin/blogs
func (h *BlogHandler) List(c *gin.Context) {
	var req services.BlogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.blogService.List(&req, true)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

// GetByID returns a post by ID
// GET /api/admin/blogs/:id
func (h *BlogHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	blog, err := h.blogService.GetByID(uint(id), true)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, blog)
}

// Create creates a new post. A cover image may be attached as multipart form
// data.
// POST /api/admin/blogs
func (h *BlogHandler) Create(c *gin.Context) {
	var req services.CreateBlogRequest
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
	blog, err := h.blogService.Create(&req, imageURL, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, blog)
}

// Update updates a post. A new cover image replaces the stored one.
// PUT /api/admin/blogs/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	var req services.UpdateBlogRequest
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

	blog, err := h.blogService.Update(uint(id), &req, imageURL)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, blog)
}

// Delete deletes a post
// DELETE /api/admin/blogs/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	if err := h.blogService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "blog deleted successfully"})
}
