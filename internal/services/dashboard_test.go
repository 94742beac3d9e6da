package services

import (
	"testing"

	"github.com/devfolio/backend/internal/models"
)

func TestDashboardStats(t *testing.T) {
	db := testDB(t)
	svc := NewDashboardService(db)

	db.Create(&models.Project{Title: "One", Description: "d", ImageURL: "/uploads/a.png"})
	db.Create(&models.Project{Title: "Two", Description: "d", ImageURL: "/uploads/b.png"})
	db.Create(&models.Skill{Name: "Go", Percentage: 90, Category: "backend"})
	db.Create(&models.Skill{Name: "Gin", Percentage: 80, Category: "backend"})
	db.Create(&models.Skill{Name: "React", Percentage: 70, Category: "frontend"})
	db.Create(&models.Category{Name: "Notes", Slug: "notes"})
	db.Create(&models.Blog{Title: "Live", Slug: "live", Content: "c", Published: true})
	db.Create(&models.Blog{Title: "Draft", Slug: "draft", Content: "c", Published: false})
	db.Create(&models.Video{Title: "Clip", VideoID: "abc123"})
	db.Create(&models.Contact{Name: "A", Email: "a@example.com", Subject: "Hi", Message: "hello there friend", Read: true})
	db.Create(&models.Contact{Name: "B", Email: "b@example.com", Subject: "Hi", Message: "hello there friend"})

	resp, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	s := resp.Stats
	if s.Projects != 2 || s.Skills != 3 || s.Categories != 1 || s.Videos != 1 {
		t.Errorf("unexpected content counts: %+v", s)
	}
	if resp.SkillsByCategory["backend"] != 2 || resp.SkillsByCategory["frontend"] != 1 {
		t.Errorf("unexpected skill category breakdown: %v", resp.SkillsByCategory)
	}
	if s.Blogs != 2 || s.PublishedBlogs != 1 {
		t.Errorf("expected 2 blogs / 1 published, got %d / %d", s.Blogs, s.PublishedBlogs)
	}
	if s.Contacts != 2 || s.UnreadContacts != 1 {
		t.Errorf("expected 2 contacts / 1 unread, got %d / %d", s.Contacts, s.UnreadContacts)
	}
	if len(resp.RecentContacts) != 2 {
		t.Errorf("expected 2 recent contacts, got %d", len(resp.RecentContacts))
	}
	if len(resp.RecentBlogs) != 2 {
		t.Errorf("expected 2 recent blogs, got %d", len(resp.RecentBlogs))
	}
}

func TestDashboardStatsEmptyDatabase(t *testing.T) {
	db := testDB(t)
	svc := NewDashboardService(db)

	resp, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if resp.Stats.Projects != 0 || resp.Stats.Contacts != 0 {
		t.Errorf("expected zero counts, got %+v", resp.Stats)
	}
	if len(resp.RecentContacts) != 0 || len(resp.RecentBlogs) != 0 {
		t.Errorf("expected empty recent lists")
	}
}
