package services

import (
	"testing"

	"github.com/devfolio/backend/pkg/response"
)

func TestCategoryService_Create_AutoSlug(t *testing.T) {
	svc := NewCategoryService(testDB(t), nil)

	category, err := svc.Create(&CreateCategoryRequest{Name: "Web Development"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if category.Slug != "web-development" {
		t.Errorf("Slug = %q, expected web-development", category.Slug)
	}
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	svc := NewCategoryService(testDB(t), nil)

	if _, err := svc.Create(&CreateCategoryRequest{Name: "Go"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err := svc.Create(&CreateCategoryRequest{Name: "Go", Slug: "golang"})
	if err == nil {
		t.Fatal("duplicate category name should be rejected")
	}

	var valErr *response.ValidationError
	if !asValidationError(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(valErr.Violations) == 0 || valErr.Violations[0].Field != "name" {
		t.Errorf("expected violation on name, got %+v", valErr.Violations)
	}
}

func TestCategoryService_Create_DuplicateSlug(t *testing.T) {
	svc := NewCategoryService(testDB(t), nil)

	svc.Create(&CreateCategoryRequest{Name: "Go", Slug: "go"})

	if _, err := svc.Create(&CreateCategoryRequest{Name: "Golang", Slug: "go"}); err == nil {
		t.Error("duplicate category slug should be rejected")
	}
}

func TestCategoryService_Update_KeepOwnSlug(t *testing.T) {
	svc := NewCategoryService(testDB(t), nil)

	category, err := svc.Create(&CreateCategoryRequest{Name: "Go", Slug: "go"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Update(category.ID, &UpdateCategoryRequest{Name: "Golang", Slug: "go"}); err != nil {
		t.Errorf("keeping own slug on rename should succeed, got %v", err)
	}
}

func TestCategoryService_GetAll_OrderedByName(t *testing.T) {
	svc := NewCategoryService(testDB(t), nil)

	svc.Create(&CreateCategoryRequest{Name: "Zig"})
	svc.Create(&CreateCategoryRequest{Name: "Android"})

	categories, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].Name != "Android" {
		t.Errorf("first category = %q, expected Android", categories[0].Name)
	}
}

func TestCategoryService_Delete_LeavesBlogReferencesDangling(t *testing.T) {
	db := testDB(t)
	catSvc := NewCategoryService(db, nil)
	blogSvc := NewBlogService(db, nil)

	category, err := catSvc.Create(&CreateCategoryRequest{Name: "Go"})
	if err != nil {
		t.Fatalf("Create category failed: %v", err)
	}

	blog, err := blogSvc.Create(&CreateBlogRequest{
		Title: "Post", Slug: "post", Content: "Body.", CategoryID: &category.ID,
	}, "", 0)
	if err != nil {
		t.Fatalf("Create blog failed: %v", err)
	}

	if err := catSvc.Delete(category.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// Only the category row goes away; the blog keeps its now-dangling
	// reference and readers fall back to uncategorized.
	stored, err := blogSvc.GetByID(blog.ID, true)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.CategoryID == nil || *stored.CategoryID != category.ID {
		t.Errorf("blog CategoryID = %v, expected the dangling reference %d", stored.CategoryID, category.ID)
	}

	if err := catSvc.Delete(category.ID); !isNotFound(err) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}
