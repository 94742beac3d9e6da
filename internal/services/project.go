package services

import (
	"errors"
	"strings"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/validation"
	"github.com/devfolio/backend/pkg/response"
	"gorm.io/gorm"
)

type ProjectService struct {
	db    *gorm.DB
	cache *ContentCache
}

func NewProjectService(db *gorm.DB, cache *ContentCache) *ProjectService {
	return &ProjectService{db: db, cache: cache}
}

type ProjectListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Featured *bool  `form:"featured"`
	Search   string `form:"search"`
}

type ProjectListResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []models.Project `json:"items"`
}

type CreateProjectRequest struct {
	Title        string `form:"title" json:"title"`
	Description  string `form:"description" json:"description"`
	Technologies string `form:"technologies" json:"technologies"` // comma-separated
	ProjectURL   string `form:"project_url" json:"project_url"`
	GithubURL    string `form:"github_url" json:"github_url"`
	Featured     bool   `form:"featured" json:"featured"`
}

type UpdateProjectRequest struct {
	Title        string  `form:"title" json:"title"`
	Description  string  `form:"description" json:"description"`
	Technologies *string `form:"technologies" json:"technologies"`
	ProjectURL   *string `form:"project_url" json:"project_url"`
	GithubURL    *string `form:"github_url" json:"github_url"`
	Featured     *bool   `form:"featured" json:"featured"`
}

// GetAll returns every project, newest first, optionally only featured ones.
// Results are cached for the public site.
func (s *ProjectService) GetAll(featuredOnly bool) ([]models.Project, error) {
	key := "projects:all"
	if featuredOnly {
		key = "projects:featured"
	}

	data, err := s.cache.Fetch(key, func() (interface{}, error) {
		var projects []models.Project
		query := s.db.Model(&models.Project{})
		if featuredOnly {
			query = query.Where("featured = ?", true)
		}
		if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
			return nil, err
		}
		return projects, nil
	})
	if err != nil {
		return nil, err
	}
	return data.([]models.Project), nil
}

// List returns paginated projects for the back-office.
func (s *ProjectService) List(req *ProjectListRequest) (*ProjectListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 100 {
		req.PageSize = 10
	}

	var projects []models.Project
	var total int64

	query := s.db.Model(&models.Project{})

	if req.Featured != nil {
		query = query.Where("featured = ?", *req.Featured)
	}
	if req.Search != "" {
		query = query.Where("title LIKE ?", "%"+req.Search+"%")
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return &ProjectListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    projects,
	}, nil
}

// GetByID returns a project by ID
func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}

// Create validates and stores a new project. imageURL comes from the upload
// step and is required.
func (s *ProjectService) Create(req *CreateProjectRequest, imageURL string, authorID uint) (*models.Project, error) {
	project := models.Project{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     imageURL,
		Technologies: splitTechnologies(req.Technologies),
		ProjectURL:   req.ProjectURL,
		GithubURL:    req.GithubURL,
		Featured:     req.Featured,
	}
	if authorID > 0 {
		project.AuthorID = &authorID
	}

	if violations := validation.Struct(&project); violations != nil {
		return nil, response.NewValidationError(violations)
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}

	s.cache.Invalidate("projects:")
	return &project, nil
}

// Update merges the provided fields into the stored project, re-validates the
// merged record, and persists it. Omitted fields keep their stored values.
func (s *ProjectService) Update(id uint, req *UpdateProjectRequest, imageURL string) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Title != "" {
		project.Title = req.Title
		updates["title"] = req.Title
	}
	if req.Description != "" {
		project.Description = req.Description
		updates["description"] = req.Description
	}
	if imageURL != "" {
		project.ImageURL = imageURL
		updates["image_url"] = imageURL
	}
	if req.Technologies != nil {
		techs := splitTechnologies(*req.Technologies)
		project.Technologies = techs
		updates["technologies"] = techs
	}
	if req.ProjectURL != nil {
		project.ProjectURL = *req.ProjectURL
		updates["project_url"] = *req.ProjectURL
	}
	if req.GithubURL != nil {
		project.GithubURL = *req.GithubURL
		updates["github_url"] = *req.GithubURL
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
		updates["featured"] = *req.Featured
	}

	if violations := validation.Struct(&project); violations != nil {
		return nil, response.NewValidationError(violations)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	s.cache.Invalidate("projects:")
	return &project, nil
}

// Delete removes a project permanently.
func (s *ProjectService) Delete(id uint) error {
	result := s.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("project not found")
	}

	s.cache.Invalidate("projects:")
	return nil
}

// splitTechnologies turns "Go, React,Postgres" into a clean list.
func splitTechnologies(raw string) models.StringList {
	if raw == "" {
		return models.StringList{}
	}
	parts := strings.Split(raw, ",")
	techs := make(models.StringList, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			techs = append(techs, t)
		}
	}
	return techs
}
