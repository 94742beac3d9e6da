package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devfolio/backend/internal/middleware"
	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret")
}

func newBlogRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Blog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	h := NewBlogHandler(db, nil, nil)
	r := gin.New()
	r.GET("/api/blogs/:slug", middleware.OptionalAuth(), h.GetBySlug)
	return r, db
}

func getBlog(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBlogGetBySlug_PublishedByID(t *testing.T) {
	r, db := newBlogRouter(t)

	blog := models.Blog{Title: "Live", Slug: "live", Content: "A.", Published: true}
	db.Create(&blog)

	w := getBlog(r, fmt.Sprintf("/api/blogs/%d", blog.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200; body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"slug":"live"`) {
		t.Errorf("body should contain the post, got %s", w.Body.String())
	}
}

func TestBlogGetBySlug_DraftByIDOnlyForAdmins(t *testing.T) {
	r, db := newBlogRouter(t)

	blog := models.Blog{Title: "Draft", Slug: "draft", Content: "B."}
	db.Create(&blog)

	w := getBlog(r, fmt.Sprintf("/api/blogs/%d", blog.ID), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("anonymous status = %d, expected 404", w.Code)
	}

	token, err := utils.GenerateToken(1, "admin", "admin", 1)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	w = getBlog(r, fmt.Sprintf("/api/blogs/%d", blog.ID), token)
	if w.Code != http.StatusOK {
		t.Fatalf("admin status = %d, expected 200; body %s", w.Code, w.Body.String())
	}
}

func TestBlogGetBySlug_AllDigitSlugStillResolves(t *testing.T) {
	r, db := newBlogRouter(t)

	db.Create(&models.Blog{Title: "Year in Review", Slug: "2024", Content: "C.", Published: true})

	w := getBlog(r, "/api/blogs/2024", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200; body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"slug":"2024"`) {
		t.Errorf("body should contain the post, got %s", w.Body.String())
	}
}
