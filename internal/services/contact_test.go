package services

import (
	"testing"

	"github.com/devfolio/backend/pkg/response"
)

func TestContactService_Create(t *testing.T) {
	svc := NewContactService(testDB(t))

	contact, err := svc.Create(&CreateContactRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Freelance work",
		Message: "I would like to discuss a project with you.",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if contact.ID == 0 {
		t.Error("contact should have an ID after create")
	}
	if contact.Read {
		t.Error("new contact should be unread")
	}
}

func TestContactService_Create_ShortMessage(t *testing.T) {
	svc := NewContactService(testDB(t))

	_, err := svc.Create(&CreateContactRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Hi",
		Message: "too short",
	})

	var valErr *response.ValidationError
	if err == nil {
		t.Fatal("expected validation error for short message")
	}
	if !asValidationError(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	found := false
	for _, v := range valErr.Violations {
		if v.Field == "message" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a violation on message, got %+v", valErr.Violations)
	}
}

func TestContactService_Create_InvalidEmail(t *testing.T) {
	svc := NewContactService(testDB(t))

	_, err := svc.Create(&CreateContactRequest{
		Name:    "Jane Visitor",
		Email:   "not-an-email",
		Subject: "Hello",
		Message: "This message is definitely long enough.",
	})
	if err == nil {
		t.Fatal("expected validation error for invalid email")
	}
}

func TestContactService_MarkRead_OneWay(t *testing.T) {
	svc := NewContactService(testDB(t))

	contact, err := svc.Create(&CreateContactRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "This message is definitely long enough.",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	marked, err := svc.MarkRead(contact.ID)
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if !marked.Read {
		t.Error("contact should be read after MarkRead")
	}

	// Marking again is a no-op, never a flip back
	again, err := svc.MarkRead(contact.ID)
	if err != nil {
		t.Fatalf("second MarkRead failed: %v", err)
	}
	if !again.Read {
		t.Error("contact should stay read")
	}
}

func TestContactService_MarkRead_NotFound(t *testing.T) {
	svc := NewContactService(testDB(t))

	_, err := svc.MarkRead(9999)
	if !isNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestContactService_Delete(t *testing.T) {
	svc := NewContactService(testDB(t))

	contact, err := svc.Create(&CreateContactRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "This message is definitely long enough.",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(contact.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// Deleting again reports not found
	if err := svc.Delete(contact.ID); !isNotFound(err) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

func TestContactService_List_ReadFilter(t *testing.T) {
	svc := NewContactService(testDB(t))

	first, _ := svc.Create(&CreateContactRequest{
		Name: "A", Email: "a@example.com", Subject: "One",
		Message: "First message with enough length.",
	})
	svc.Create(&CreateContactRequest{
		Name: "B", Email: "b@example.com", Subject: "Two",
		Message: "Second message with enough length.",
	})

	svc.MarkRead(first.ID)

	unreadOnly := false
	resp, err := svc.List(&ContactListRequest{Read: &unreadOnly})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("expected 1 unread contact, got %d", resp.Total)
	}
	if resp.Unread != 1 {
		t.Errorf("expected unread counter 1, got %d", resp.Unread)
	}

	all, err := svc.List(&ContactListRequest{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if all.Total != 2 {
		t.Errorf("expected 2 contacts in total, got %d", all.Total)
	}
}

func TestContactService_UnreadCount(t *testing.T) {
	svc := NewContactService(testDB(t))

	count, err := svc.UnreadCount()
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 unread on empty inbox, got %d", count)
	}

	svc.Create(&CreateContactRequest{
		Name: "A", Email: "a@example.com", Subject: "One",
		Message: "First message with enough length.",
	})

	count, _ = svc.UnreadCount()
	if count != 1 {
		t.Errorf("expected 1 unread, got %d", count)
	}
}
