package validation

import (
	"testing"

	"github.com/devfolio/backend/internal/models"
)

func validSkill() models.Skill {
	return models.Skill{Name: "Go", Percentage: 90, Category: "backend", SortOrder: 1}
}

func TestStruct_ValidSkill(t *testing.T) {
	if violations := Struct(validSkill()); violations != nil {
		t.Errorf("expected no violations, got %v", violations)
	}
}

func TestStruct_SkillPercentageOutOfRange(t *testing.T) {
	for _, pct := range []int{-1, 101, 150} {
		skill := validSkill()
		skill.Percentage = pct

		violations := Struct(skill)
		if len(violations) == 0 {
			t.Errorf("percentage %d should be rejected", pct)
			continue
		}
		if violations[0].Field != "percentage" {
			t.Errorf("violation field = %q, expected %q", violations[0].Field, "percentage")
		}
	}
}

func TestStruct_SkillPercentageBounds(t *testing.T) {
	for _, pct := range []int{0, 100} {
		skill := validSkill()
		skill.Percentage = pct
		if violations := Struct(skill); violations != nil {
			t.Errorf("percentage %d should be accepted, got %v", pct, violations)
		}
	}
}

func TestStruct_SkillCategoryEnum(t *testing.T) {
	for _, category := range models.SkillCategories {
		skill := validSkill()
		skill.Category = category
		if violations := Struct(skill); violations != nil {
			t.Errorf("category %q should be accepted, got %v", category, violations)
		}
	}

	skill := validSkill()
	skill.Category = "devops"
	violations := Struct(skill)
	if len(violations) != 1 || violations[0].Field != "category" {
		t.Errorf("category %q should produce a category violation, got %v", skill.Category, violations)
	}
}

func TestStruct_BlogRequiredFields(t *testing.T) {
	blog := models.Blog{}
	violations := Struct(blog)

	wantFields := map[string]bool{"title": false, "slug": false, "content": false}
	for _, v := range violations {
		if _, ok := wantFields[v.Field]; ok {
			wantFields[v.Field] = true
		}
	}
	for field, seen := range wantFields {
		if !seen {
			t.Errorf("missing violation for required field %q", field)
		}
	}
}

func TestStruct_BlogSlugFormat(t *testing.T) {
	blog := models.Blog{Title: "Hello", Content: "body", Slug: "Invalid Slug!"}
	violations := Struct(blog)

	found := false
	for _, v := range violations {
		if v.Field == "slug" {
			found = true
		}
	}
	if !found {
		t.Errorf("slug %q should be rejected, got %v", blog.Slug, violations)
	}
}

func TestStruct_ContactMessageLength(t *testing.T) {
	contact := models.Contact{
		Name:    "A",
		Email:   "a@x.com",
		Subject: "Hi",
		Message: "too short",
	}
	violations := Struct(contact)
	if len(violations) != 1 || violations[0].Field != "message" {
		t.Fatalf("expected a single message violation, got %v", violations)
	}

	contact.Message = "Hello there, 10+ chars"
	if violations := Struct(contact); violations != nil {
		t.Errorf("expected no violations, got %v", violations)
	}
}

func TestStruct_ContactEmail(t *testing.T) {
	contact := models.Contact{
		Name:    "A",
		Email:   "not-an-email",
		Subject: "Hi",
		Message: "Hello there, 10+ chars",
	}
	violations := Struct(contact)
	if len(violations) != 1 || violations[0].Field != "email" {
		t.Errorf("expected a single email violation, got %v", violations)
	}
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		slug  string
		valid bool
	}{
		{"hello-world", true},
		{"a", true},
		{"2024-review", true},
		{"", false},
		{"Hello", false},
		{"double--hyphen", false},
		{"-leading", false},
		{"trailing-", false},
		{"under_score", false},
	}

	for _, tt := range tests {
		if got := IsValidSlug(tt.slug); got != tt.valid {
			t.Errorf("IsValidSlug(%q) = %v, expected %v", tt.slug, got, tt.valid)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Already-Slugged  ", "already-slugged"},
		{"Go & Gin: a love story", "go-gin-a-love-story"},
		{"2024 Year Review!", "2024-year-review"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
