package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/utils"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds demo content into the configured database. Safe to run more than
// once: rows are matched by their natural keys before insert.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := models.InitDB(&cfg.Database); err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if err := models.SeedDefaultData(); err != nil {
		log.Fatalf("failed to seed default data: %v", err)
	}

	db := models.GetDB()

	hash, err := utils.HashPassword("admin")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	admin := models.User{
		Username: "admin",
		Password: hash,
		Name:     "Administrator",
		Role:     "admin",
		IsActive: true,
	}
	db.Where("username = ?", admin.Username).FirstOrCreate(&admin)

	projects := []models.Project{
		{
			Title:        "DevFolio",
			Description:  "The backend powering this portfolio: content API, admin back-office and notification pipeline.",
			ImageURL:     "/uploads/demo/devfolio.png",
			Technologies: models.StringList{"Go", "Gin", "GORM", "SQLite"},
			GithubURL:    "https://github.com/devfolio/backend",
			Featured:     true,
			AuthorID:     &admin.ID,
		},
		{
			Title:        "Link Shortener",
			Description:  "A small URL shortener with click analytics and QR code generation.",
			ImageURL:     "/uploads/demo/shortener.png",
			Technologies: models.StringList{"Go", "Redis"},
			ProjectURL:   "https://short.example.com",
			AuthorID:     &admin.ID,
		},
	}
	for i := range projects {
		db.Where("title = ?", projects[i].Title).FirstOrCreate(&projects[i])
	}

	skills := []models.Skill{
		{Name: "Go", Percentage: 90, Category: "backend", SortOrder: 1},
		{Name: "PostgreSQL", Percentage: 80, Category: "database", SortOrder: 1},
		{Name: "TypeScript", Percentage: 75, Category: "frontend", SortOrder: 1},
		{Name: "Docker", Percentage: 85, Category: "tools", SortOrder: 1},
		{Name: "AWS", Percentage: 70, Category: "cloud", SortOrder: 1},
	}
	for i := range skills {
		db.Where("name = ? AND category = ?", skills[i].Name, skills[i].Category).FirstOrCreate(&skills[i])
	}

	categories := []models.Category{
		{Name: "Engineering", Slug: "engineering"},
		{Name: "Notes", Slug: "notes"},
	}
	for i := range categories {
		db.Where("slug = ?", categories[i].Slug).FirstOrCreate(&categories[i])
	}

	blogs := []models.Blog{
		{
			Title:      "Hello World",
			Slug:       "hello-world",
			Content:    "This is the first post on the new site. More to come.",
			Excerpt:    "First post on the new site.",
			CategoryID: &categories[1].ID,
			AuthorID:   &admin.ID,
			Published:  true,
		},
		{
			Title:      "Shipping a Portfolio Backend in Go",
			Slug:       "shipping-a-portfolio-backend-in-go",
			Content:    "Notes on building a small content API with Gin and GORM, and what I would do differently next time.",
			Excerpt:    "Notes on building a small content API with Gin and GORM.",
			CategoryID: &categories[0].ID,
			AuthorID:   &admin.ID,
			Published:  true,
		},
		{
			Title:     "Draft: Ideas for 2026",
			Slug:      "draft-ideas-for-2026",
			Content:   "A scratchpad of things to build next year.",
			AuthorID:  &admin.ID,
			Published: false,
		},
	}
	for i := range blogs {
		db.Where("slug = ?", blogs[i].Slug).FirstOrCreate(&blogs[i])
	}

	views := int64(1200)
	publishedAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	videos := []models.Video{
		{
			Title:        "Building a REST API with Gin",
			VideoID:      "dQw4w9WgXcQ",
			ThumbnailURL: "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
			Views:        &views,
			PublishedAt:  &publishedAt,
			Featured:     true,
			SortOrder:    1,
		},
	}
	for i := range videos {
		db.Where("video_id = ?", videos[i].VideoID).FirstOrCreate(&videos[i])
	}

	fmt.Println("Seed complete:")
	fmt.Printf("  users:      %d\n", count(db.Model(&models.User{})))
	fmt.Printf("  projects:   %d\n", count(db.Model(&models.Project{})))
	fmt.Printf("  skills:     %d\n", count(db.Model(&models.Skill{})))
	fmt.Printf("  categories: %d\n", count(db.Model(&models.Category{})))
	fmt.Printf("  blogs:      %d\n", count(db.Model(&models.Blog{})))
	fmt.Printf("  videos:     %d\n", count(db.Model(&models.Video{})))
}

func count(tx *gorm.DB) int64 {
	var n int64
	tx.Count(&n)
	return n
}
