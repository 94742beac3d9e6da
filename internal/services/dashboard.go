package services

import (
	"github.com/devfolio/backend/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	Projects       int64 `json:"projects"`
	Skills         int64 `json:"skills"`
	Categories     int64 `json:"categories"`
	Blogs          int64 `json:"blogs"`
	PublishedBlogs int64 `json:"published_blogs"`
	Videos         int64 `json:"videos"`
	Contacts       int64 `json:"contacts"`
	UnreadContacts int64 `json:"unread_contacts"`
}

type DashboardResponse struct {
	Stats            DashboardStats   `json:"stats"`
	SkillsByCategory map[string]int64 `json:"skills_by_category"`
	RecentContacts   []models.Contact `json:"recent_contacts"`
	RecentBlogs      []models.Blog    `json:"recent_blogs"`
}

// GetStats aggregates content counts and the latest inbox activity for the
// back-office landing page.
func (s *DashboardService) GetStats() (*DashboardResponse, error) {
	var stats DashboardStats

	s.db.Model(&models.Project{}).Count(&stats.Projects)
	s.db.Model(&models.Skill{}).Count(&stats.Skills)
	s.db.Model(&models.Category{}).Count(&stats.Categories)
	s.db.Model(&models.Blog{}).Count(&stats.Blogs)
	s.db.Model(&models.Blog{}).Where("published = ?", true).Count(&stats.PublishedBlogs)
	s.db.Model(&models.Video{}).Count(&stats.Videos)
	s.db.Model(&models.Contact{}).Count(&stats.Contacts)
	s.db.Model(&models.Contact{}).Where("read = ?", false).Count(&stats.UnreadContacts)

	type categoryCount struct {
		Category string
		Count    int64
	}
	var categoryCounts []categoryCount
	s.db.Model(&models.Skill{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Scan(&categoryCounts)
	skillsByCategory := make(map[string]int64, len(categoryCounts))
	for _, cc := range categoryCounts {
		skillsByCategory[cc.Category] = cc.Count
	}

	var recentContacts []models.Contact
	if err := s.db.Order("created_at DESC").Limit(5).Find(&recentContacts).Error; err != nil {
		return nil, err
	}

	var recentBlogs []models.Blog
	if err := s.db.Order("created_at DESC").Limit(5).Find(&recentBlogs).Error; err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Stats:            stats,
		SkillsByCategory: skillsByCategory,
		RecentContacts:   recentContacts,
		RecentBlogs:      recentBlogs,
	}, nil
}
