package services

import (
	"errors"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/validation"
	"github.com/devfolio/backend/pkg/logger"
	"github.com/devfolio/backend/pkg/response"
	"gorm.io/gorm"
)

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Read     *bool  `form:"read"`
	Search   string `form:"search"`
}

type ContactListResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Unread   int64            `json:"unread"`
	Items    []models.Contact `json:"items"`
}

// Create validates and stores a contact form submission, then hands a
// notification task to the queue. A queue failure never fails the submission.
func (s *ContactService) Create(req *CreateContactRequest) (*models.Contact, error) {
	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if violations := validation.Struct(&contact); violations != nil {
		return nil, response.NewValidationError(violations)
	}

	if err := s.db.Create(&contact).Error; err != nil {
		return nil, err
	}

	if queue := GetTaskQueue(); queue != nil {
		task := &NotifyTask{
			ContactID: contact.ID,
			Name:      contact.Name,
			Email:     contact.Email,
			Subject:   contact.Subject,
			Message:   contact.Message,
		}
		if err := queue.Enqueue(task); err != nil {
			logger.Warnf("failed to enqueue contact notification: %v", err)
		}
	}

	return &contact, nil
}

// List returns the inbox, newest first, optionally filtered by read state.
func (s *ContactService) List(req *ContactListRequest) (*ContactListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 100 {
		req.PageSize = 20
	}

	var contacts []models.Contact
	var total int64

	query := s.db.Model(&models.Contact{})

	if req.Read != nil {
		query = query.Where("read = ?", *req.Read)
	}
	if req.Search != "" {
		query = query.Where("name LIKE ? OR email LIKE ? OR subject LIKE ?",
			"%"+req.Search+"%", "%"+req.Search+"%", "%"+req.Search+"%")
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}

	unread, err := s.UnreadCount()
	if err != nil {
		return nil, err
	}

	return &ContactListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Unread:   unread,
		Items:    contacts,
	}, nil
}

func (s *ContactService) GetByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("contact not found")
		}
		return nil, err
	}
	return &contact, nil
}

// MarkRead flips a message to read. The transition is one-way: marking an
// already-read message is a no-op, and there is no way back to unread.
func (s *ContactService) MarkRead(id uint) (*models.Contact, error) {
	contact, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if contact.Read {
		return contact, nil
	}

	if err := s.db.Model(contact).Update("read", true).Error; err != nil {
		return nil, err
	}
	contact.Read = true
	return contact, nil
}

func (s *ContactService) Delete(id uint) error {
	result := s.db.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("contact not found")
	}
	return nil
}

// UnreadCount returns how many messages are still unread.
func (s *ContactService) UnreadCount() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Contact{}).Where("read = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
