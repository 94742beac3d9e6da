package services

import (
	"errors"
	"time"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/validation"
	"github.com/devfolio/backend/pkg/response"
	"gorm.io/gorm"
)

type VideoService struct {
	db    *gorm.DB
	cache *ContentCache
}

func NewVideoService(db *gorm.DB, cache *ContentCache) *VideoService {
	return &VideoService{db: db, cache: cache}
}

type CreateVideoRequest struct {
	Title        string     `json:"title"`
	VideoID      string     `json:"video_id"`
	ThumbnailURL string     `json:"thumbnail_url"`
	Views        *int64     `json:"views"`
	PublishedAt  *time.Time `json:"published_at"`
	Featured     bool       `json:"featured"`
	SortOrder    int        `json:"order"`
}

type UpdateVideoRequest struct {
	Title        string     `json:"title"`
	VideoID      string     `json:"video_id"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	Views        *int64     `json:"views"`
	PublishedAt  *time.Time `json:"published_at"`
	Featured     *bool      `json:"featured"`
	SortOrder    *int       `json:"order"`
}

// GetAll returns videos in display order, optionally only featured ones.
func (s *VideoService) GetAll(featuredOnly bool) ([]models.Video, error) {
	key := "videos:all"
	if featuredOnly {
		key = "videos:featured"
	}

	data, err := s.cache.Fetch(key, func() (interface{}, error) {
		var videos []models.Video
		query := s.db.Model(&models.Video{})
		if featuredOnly {
			query = query.Where("featured = ?", true)
		}
		if err := query.Order("sort_order ASC, id ASC").Find(&videos).Error; err != nil {
			return nil, err
		}
		return videos, nil
	})
	if err != nil {
		return nil, err
	}
	return data.([]models.Video), nil
}

func (s *VideoService) GetByID(id uint) (*models.Video, error) {
	var video models.Video
	if err := s.db.First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("video not found")
		}
		return nil, err
	}
	return &video, nil
}

func (s *VideoService) Create(req *CreateVideoRequest) (*models.Video, error) {
	video := models.Video{
		Title:        req.Title,
		VideoID:      req.VideoID,
		ThumbnailURL: req.ThumbnailURL,
		Views:        req.Views,
		PublishedAt:  req.PublishedAt,
		Featured:     req.Featured,
		SortOrder:    req.SortOrder,
	}

	if violations := validation.Struct(&video); violations != nil {
		return nil, response.NewValidationError(violations)
	}

	if err := s.db.Create(&video).Error; err != nil {
		return nil, err
	}

	s.cache.Invalidate("videos:")
	return &video, nil
}

func (s *VideoService) Update(id uint, req *UpdateVideoRequest) (*models.Video, error) {
	var video models.Video
	if err := s.db.First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("video not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Title != "" {
		video.Title = req.Title
		updates["title"] = req.Title
	}
	if req.VideoID != "" {
		video.VideoID = req.VideoID
		updates["video_id"] = req.VideoID
	}
	if req.ThumbnailURL != nil {
		video.ThumbnailURL = *req.ThumbnailURL
		updates["thumbnail_url"] = *req.ThumbnailURL
	}
	if req.Views != nil {
		video.Views = req.Views
		updates["views"] = req.Views
	}
	if req.PublishedAt != nil {
		video.PublishedAt = req.PublishedAt
		updates["published_at"] = req.PublishedAt
	}
	if req.Featured != nil {
		video.Featured = *req.Featured
		updates["featured"] = *req.Featured
	}
	if req.SortOrder != nil {
		video.SortOrder = *req.SortOrder
		updates["sort_order"] = *req.SortOrder
	}

	if violations := validation.Struct(&video); violations != nil {
		return nil, response.NewValidationError(violations)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&video).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	s.cache.Invalidate("videos:")
	return &video, nil
}

func (s *VideoService) Delete(id uint) error {
	result := s.db.Delete(&models.Video{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("video not found")
	}

	s.cache.Invalidate("videos:")
	return nil
}
