package services

import (
	"errors"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/validation"
	"github.com/devfolio/backend/pkg/response"
	"gorm.io/gorm"
)

// featuredBlogCount is how many recent published posts the public landing
// page highlights.
const featuredBlogCount = 3

type BlogService struct {
	db    *gorm.DB
	cache *ContentCache
}

func NewBlogService(db *gorm.DB, cache *ContentCache) *BlogService {
	return &BlogService{db: db, cache: cache}
}

type BlogListRequest struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	CategoryID *uint  `form:"category_id"`
	Published  *bool  `form:"published"`
	Search     string `form:"search"`
}

type BlogListResponse struct {
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Items    []models.Blog `json:"items"`
}

type CreateBlogRequest struct {
	Title      string `form:"title" json:"title"`
	Slug       string `form:"slug" json:"slug"`
	Content    string `form:"content" json:"content"`
	Excerpt    string `form:"excerpt" json:"excerpt"`
	CategoryID *uint  `form:"category_id" json:"category_id"`
	Published  bool   `form:"published" json:"published"`
}

type UpdateBlogRequest struct {
	Title      string  `form:"title" json:"title"`
	Slug       string  `form:"slug" json:"slug"`
	Content    string  `form:"content" json:"content"`
	Excerpt    *string `form:"excerpt" json:"excerpt"`
	CategoryID *uint   `form:"category_id" json:"category_id"`
	Published  *bool   `form:"published" json:"published"`
}

// List returns paginated posts. Drafts are included only when includeDrafts
// is set, which routes gate on the admin role.
func (s *BlogService) List(req *BlogListRequest, includeDrafts bool) (*BlogListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 100 {
		req.PageSize = 10
	}

	var blogs []models.Blog
	var total int64

	query := s.db.Model(&models.Blog{})

	if !includeDrafts {
		query = query.Where("published = ?", true)
	} else if req.Published != nil {
		query = query.Where("published = ?", *req.Published)
	}
	if req.CategoryID != nil {
		query = query.Where("category_id = ?", *req.CategoryID)
	}
	if req.Search != "" {
		query = query.Where("title LIKE ?", "%"+req.Search+"%")
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, err
	}

	return &BlogListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    blogs,
	}, nil
}

// Featured returns the most recent published posts for the landing page.
func (s *BlogService) Featured() ([]models.Blog, error) {
	data, err := s.cache.Fetch("blogs:featured", func() (interface{}, error) {
		var blogs []models.Blog
		if err := s.db.Where("published = ?", true).
			Order("created_at DESC").Limit(featuredBlogCount).Find(&blogs).Error; err != nil {
			return nil, err
		}
		return blogs, nil
	})
	if err != nil {
		return nil, err
	}
	return data.([]models.Blog), nil
}

// GetBySlug returns a post by slug. Drafts are not found unless includeDrafts
// is set; the response does not distinguish missing from unpublished.
func (s *BlogService) GetBySlug(slug string, includeDrafts bool) (*models.Blog, error) {
	var blog models.Blog
	if err := s.db.Where("slug = ?", slug).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("blog not found")
		}
		return nil, err
	}

	if !blog.Published && !includeDrafts {
		return nil, response.NewNotFound("blog not found")
	}
	return &blog, nil
}

// GetByID returns a post by id with the same draft gating as GetBySlug:
// drafts resolve only when includeDrafts is set, and the response does not
// distinguish missing from unpublished.
func (s *BlogService) GetByID(id uint, includeDrafts bool) (*models.Blog, error) {
	var blog models.Blog
	if err := s.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("blog not found")
		}
		return nil, err
	}

	if !blog.Published && !includeDrafts {
		return nil, response.NewNotFound("blog not found")
	}
	return &blog, nil
}

// Create validates and stores a new post. The slug defaults to a slugified
// title and must be unique.
func (s *BlogService) Create(req *CreateBlogRequest, imageURL string, authorID uint) (*models.Blog, error) {
	if req.Slug == "" {
		req.Slug = validation.Slugify(req.Title)
	}

	blog := models.Blog{
		Title:      req.Title,
		Slug:       req.Slug,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		ImageURL:   imageURL,
		CategoryID: req.CategoryID,
		Published:  req.Published,
	}
	if authorID > 0 {
		blog.AuthorID = &authorID
	}

	violations := validation.Struct(&blog)
	violations = append(violations, s.slugViolations(blog.Slug, 0)...)
	if len(violations) > 0 {
		return nil, response.NewValidationError(violations)
	}

	if err := s.db.Create(&blog).Error; err != nil {
		return nil, err
	}

	s.cache.Invalidate("blogs:")
	return &blog, nil
}

// Update merges the provided fields into the stored post and re-validates the
// merged record, including slug uniqueness against other posts.
func (s *BlogService) Update(id uint, req *UpdateBlogRequest, imageURL string) (*models.Blog, error) {
	var blog models.Blog
	if err := s.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("blog not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Title != "" {
		blog.Title = req.Title
		updates["title"] = req.Title
	}
	if req.Slug != "" {
		blog.Slug = req.Slug
		updates["slug"] = req.Slug
	}
	if req.Content != "" {
		blog.Content = req.Content
		updates["content"] = req.Content
	}
	if req.Excerpt != nil {
		blog.Excerpt = *req.Excerpt
		updates["excerpt"] = *req.Excerpt
	}
	if imageURL != "" {
		blog.ImageURL = imageURL
		updates["image_url"] = imageURL
	}
	if req.CategoryID != nil {
		blog.CategoryID = req.CategoryID
		updates["category_id"] = req.CategoryID
	}
	if req.Published != nil {
		blog.Published = *req.Published
		updates["published"] = *req.Published
	}

	violations := validation.Struct(&blog)
	violations = append(violations, s.slugViolations(blog.Slug, id)...)
	if len(violations) > 0 {
		return nil, response.NewValidationError(violations)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&blog).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	s.cache.Invalidate("blogs:")
	return &blog, nil
}

func (s *BlogService) Delete(id uint) error {
	result := s.db.Delete(&models.Blog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("blog not found")
	}

	s.cache.Invalidate("blogs:")
	return nil
}

func (s *BlogService) slugViolations(slug string, excludeID uint) []response.FieldViolation {
	var count int64
	s.db.Model(&models.Blog{}).
		Where("slug = ? AND id <> ?", slug, excludeID).Count(&count)
	if count > 0 {
		return []response.FieldViolation{{Field: "slug", Message: "is already in use"}}
	}
	return nil
}
