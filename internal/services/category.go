package services

import (
	"errors"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/validation"
	"github.com/devfolio/backend/pkg/response"
	"gorm.io/gorm"
)

type CategoryService struct {
	db    *gorm.DB
	cache *ContentCache
}

func NewCategoryService(db *gorm.DB, cache *ContentCache) *CategoryService {
	return &CategoryService{db: db, cache: cache}
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GetAll returns all categories ordered by name.
func (s *CategoryService) GetAll() ([]models.Category, error) {
	data, err := s.cache.Fetch("categories:all", func() (interface{}, error) {
		var categories []models.Category
		if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
			return nil, err
		}
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return data.([]models.Category), nil
}

func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("category not found")
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("category not found")
		}
		return nil, err
	}
	return &category, nil
}

// Create stores a new category. The slug defaults to a slugified name.
func (s *CategoryService) Create(req *CreateCategoryRequest) (*models.Category, error) {
	if req.Slug == "" {
		req.Slug = validation.Slugify(req.Name)
	}

	category := models.Category{
		Name: req.Name,
		Slug: req.Slug,
	}

	violations := validation.Struct(&category)
	violations = append(violations, s.uniquenessViolations(&category, 0)...)
	if len(violations) > 0 {
		return nil, response.NewValidationError(violations)
	}

	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}

	s.cache.Invalidate("categories:")
	return &category, nil
}

func (s *CategoryService) Update(id uint, req *UpdateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("category not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Name != "" {
		category.Name = req.Name
		updates["name"] = req.Name
	}
	if req.Slug != "" {
		category.Slug = req.Slug
		updates["slug"] = req.Slug
	}

	violations := validation.Struct(&category)
	violations = append(violations, s.uniquenessViolations(&category, id)...)
	if len(violations) > 0 {
		return nil, response.NewValidationError(violations)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&category).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	s.cache.Invalidate("categories:")
	return &category, nil
}

// Delete removes a category. Blog references are left dangling; readers
// render an unresolved category as uncategorized.
func (s *CategoryService) Delete(id uint) error {
	result := s.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("category not found")
	}

	s.cache.Invalidate("categories:")
	return nil
}

// uniquenessViolations checks name and slug against other categories.
// excludeID skips the record itself on update.
func (s *CategoryService) uniquenessViolations(category *models.Category, excludeID uint) []response.FieldViolation {
	var violations []response.FieldViolation

	var count int64
	s.db.Model(&models.Category{}).
		Where("name = ? AND id <> ?", category.Name, excludeID).Count(&count)
	if count > 0 {
		violations = append(violations, response.FieldViolation{Field: "name", Message: "is already in use"})
	}

	count = 0
	s.db.Model(&models.Category{}).
		Where("slug = ? AND id <> ?", category.Slug, excludeID).Count(&count)
	if count > 0 {
		violations = append(violations, response.FieldViolation{Field: "slug", Message: "is already in use"})
	}

	return violations
}
