package services

import (
	"testing"
)

func TestSkillService_Create(t *testing.T) {
	svc := NewSkillService(testDB(t), nil)

	skill, err := svc.Create(&CreateSkillRequest{
		Name:       "Go",
		Percentage: 90,
		Category:   "backend",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if skill.ID == 0 {
		t.Error("skill should have an ID after create")
	}
}

func TestSkillService_Create_PercentageBounds(t *testing.T) {
	svc := NewSkillService(testDB(t), nil)

	// 0 and 100 are both valid
	for _, pct := range []int{0, 100} {
		if _, err := svc.Create(&CreateSkillRequest{
			Name: "Bound", Percentage: pct, Category: "tools",
		}); err != nil {
			t.Errorf("percentage %d should be valid, got %v", pct, err)
		}
	}

	for _, pct := range []int{-1, 101, 150} {
		if _, err := svc.Create(&CreateSkillRequest{
			Name: "Bad", Percentage: pct, Category: "tools",
		}); err == nil {
			t.Errorf("percentage %d should be rejected", pct)
		}
	}
}

func TestSkillService_Create_InvalidCategory(t *testing.T) {
	svc := NewSkillService(testDB(t), nil)

	_, err := svc.Create(&CreateSkillRequest{
		Name: "Go", Percentage: 90, Category: "cooking",
	})
	if err == nil {
		t.Error("unknown category should be rejected")
	}
}

func TestSkillService_Update_MergedValidation(t *testing.T) {
	svc := NewSkillService(testDB(t), nil)

	skill, err := svc.Create(&CreateSkillRequest{
		Name: "Go", Percentage: 90, Category: "backend",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Out-of-range percentage on a partial update is rejected
	bad := 150
	if _, err := svc.Update(skill.ID, &UpdateSkillRequest{Percentage: &bad}); err == nil {
		t.Error("percentage 150 should be rejected on update")
	}

	// The stored record is untouched
	stored, err := svc.GetByID(skill.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.Percentage != 90 {
		t.Errorf("percentage = %d, expected 90 after rejected update", stored.Percentage)
	}
}

func TestSkillService_Update_PartialMerge(t *testing.T) {
	svc := NewSkillService(testDB(t), nil)

	skill, err := svc.Create(&CreateSkillRequest{
		Name: "Go", Percentage: 90, Category: "backend", SortOrder: 2,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	pct := 95
	updated, err := svc.Update(skill.ID, &UpdateSkillRequest{Percentage: &pct})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Percentage != 95 {
		t.Errorf("Percentage = %d, expected 95", updated.Percentage)
	}
	if updated.Name != "Go" {
		t.Errorf("Name = %q, should be unchanged", updated.Name)
	}
	if updated.Category != "backend" {
		t.Errorf("Category = %q, should be unchanged", updated.Category)
	}
	if updated.SortOrder != 2 {
		t.Errorf("SortOrder = %d, should be unchanged", updated.SortOrder)
	}
}

func TestSkillService_GetAll_Ordering(t *testing.T) {
	svc := NewSkillService(testDB(t), nil)

	svc.Create(&CreateSkillRequest{Name: "Docker", Percentage: 70, Category: "tools", SortOrder: 2})
	svc.Create(&CreateSkillRequest{Name: "Git", Percentage: 85, Category: "tools", SortOrder: 1})
	svc.Create(&CreateSkillRequest{Name: "Go", Percentage: 90, Category: "backend", SortOrder: 1})

	skills, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(skills) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(skills))
	}

	// display order first, insertion order breaking ties
	if skills[0].Name != "Git" {
		t.Errorf("first skill = %q, expected Git", skills[0].Name)
	}
	if skills[1].Name != "Go" {
		t.Errorf("second skill = %q, expected Go", skills[1].Name)
	}
	if skills[2].Name != "Docker" {
		t.Errorf("third skill = %q, expected Docker", skills[2].Name)
	}
}

func TestSkillService_Delete_NotFound(t *testing.T) {
	svc := NewSkillService(testDB(t), nil)

	if err := svc.Delete(42); !isNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}
