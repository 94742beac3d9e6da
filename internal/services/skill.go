package services

import (
	"errors"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/validation"
	"github.com/devfolio/backend/pkg/response"
	"gorm.io/gorm"
)

type SkillService struct {
	db    *gorm.DB
	cache *ContentCache
}

func NewSkillService(db *gorm.DB, cache *ContentCache) *SkillService {
	return &SkillService{db: db, cache: cache}
}

type CreateSkillRequest struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Category   string `json:"category"`
	SortOrder  int    `json:"order"`
}

type UpdateSkillRequest struct {
	Name       string  `json:"name"`
	Percentage *int    `json:"percentage"`
	Category   string  `json:"category"`
	SortOrder  *int    `json:"order"`
}

// GetAll returns all skills in display order.
func (s *SkillService) GetAll() ([]models.Skill, error) {
	data, err := s.cache.Fetch("skills:all", func() (interface{}, error) {
		var skills []models.Skill
		if err := s.db.Order("sort_order ASC, id ASC").Find(&skills).Error; err != nil {
			return nil, err
		}
		return skills, nil
	})
	if err != nil {
		return nil, err
	}
	return data.([]models.Skill), nil
}

// GetByCategory returns skills of one category in display order.
func (s *SkillService) GetByCategory(category string) ([]models.Skill, error) {
	var skills []models.Skill
	if err := s.db.Where("category = ?", category).Order("sort_order ASC, id ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (s *SkillService) GetByID(id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := s.db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("skill not found")
		}
		return nil, err
	}
	return &skill, nil
}

func (s *SkillService) Create(req *CreateSkillRequest) (*models.Skill, error) {
	skill := models.Skill{
		Name:       req.Name,
		Percentage: req.Percentage,
		Category:   req.Category,
		SortOrder:  req.SortOrder,
	}

	if violations := validation.Struct(&skill); violations != nil {
		return nil, response.NewValidationError(violations)
	}

	if err := s.db.Create(&skill).Error; err != nil {
		return nil, err
	}

	s.cache.Invalidate("skills:")
	return &skill, nil
}

// Update merges provided fields into the stored skill and re-validates the
// merged record, so an out-of-range percentage is rejected even on a partial
// update.
func (s *SkillService) Update(id uint, req *UpdateSkillRequest) (*models.Skill, error) {
	var skill models.Skill
	if err := s.db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("skill not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Name != "" {
		skill.Name = req.Name
		updates["name"] = req.Name
	}
	if req.Percentage != nil {
		skill.Percentage = *req.Percentage
		updates["percentage"] = *req.Percentage
	}
	if req.Category != "" {
		skill.Category = req.Category
		updates["category"] = req.Category
	}
	if req.SortOrder != nil {
		skill.SortOrder = *req.SortOrder
		updates["sort_order"] = *req.SortOrder
	}

	if violations := validation.Struct(&skill); violations != nil {
		return nil, response.NewValidationError(violations)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&skill).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	s.cache.Invalidate("skills:")
	return &skill, nil
}

func (s *SkillService) Delete(id uint) error {
	result := s.db.Delete(&models.Skill{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("skill not found")
	}

	s.cache.Invalidate("skills:")
	return nil
}
