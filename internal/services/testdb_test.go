package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/pkg/response"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a per-test in-memory database. The shared cache keeps the
// database alive across the pooled connections.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Skill{},
		&models.Category{},
		&models.Blog{},
		&models.Video{},
		&models.Contact{},
		&models.RefreshToken{},
		&models.SystemConfig{},
		&models.SystemLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func asValidationError(err error, target **response.ValidationError) bool {
	return errors.As(err, target)
}

func asAppError(err error, target **response.AppError) bool {
	return errors.As(err, target)
}

func isNotFound(err error) bool {
	var appErr *response.AppError
	return errors.As(err, &appErr) && appErr.HTTPStatus == http.StatusNotFound
}
