package services

import (
	"errors"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/utils"
	"github.com/devfolio/backend/internal/validation"
	"github.com/devfolio/backend/pkg/response"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UserListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Role     string `form:"role"`
}

type UserListResponse struct {
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Items    []models.User `json:"items"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active"`
}

func (s *UserService) List(req *UserListRequest) (*UserListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 100 {
		req.PageSize = 20
	}

	var users []models.User
	var total int64

	query := s.db.Model(&models.User{})

	if req.Search != "" {
		query = query.Where("username LIKE ? OR name LIKE ? OR email LIKE ?",
			"%"+req.Search+"%", "%"+req.Search+"%", "%"+req.Search+"%")
	}
	if req.Role != "" {
		query = query.Where("role = ?", req.Role)
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	return &UserListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    users,
	}, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Create(req *CreateUserRequest) (*models.User, error) {
	if req.Role == "" {
		req.Role = "user"
	}

	user := models.User{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		IsActive: true,
	}

	violations := validation.Struct(&user)
	if len(req.Password) < 6 {
		violations = append(violations, response.FieldViolation{Field: "password", Message: "must be at least 6 characters"})
	}

	var count int64
	s.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		violations = append(violations, response.FieldViolation{Field: "username", Message: "is already in use"})
	}

	if len(violations) > 0 {
		return nil, response.NewValidationError(violations)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashedPassword

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Update merges the provided fields into the stored user. operatorID is the
// admin performing the change; self-demotion and self-deactivation are
// rejected so an instance cannot lock out its last admin.
func (s *UserService) Update(id uint, req *UpdateUserRequest, operatorID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}

	if id == operatorID {
		if req.Role != "" && req.Role != user.Role {
			return nil, response.NewBadRequest("cannot change your own role")
		}
		if req.IsActive != nil && !*req.IsActive {
			return nil, response.NewBadRequest("cannot deactivate your own account")
		}
	}

	updates := make(map[string]interface{})

	if req.Name != "" {
		user.Name = req.Name
		updates["name"] = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
		updates["email"] = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
		updates["role"] = req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
		updates["is_active"] = *req.IsActive
	}

	violations := validation.Struct(&user)
	if req.Password != "" && len(req.Password) < 6 {
		violations = append(violations, response.FieldViolation{Field: "password", Message: "must be at least 6 characters"})
	}
	if len(violations) > 0 {
		return nil, response.NewValidationError(violations)
	}

	if req.Password != "" {
		hashedPassword, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashedPassword
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &user, nil
}

// Delete removes a user and their refresh tokens. Admins cannot delete
// themselves.
func (s *UserService) Delete(id uint, operatorID uint) error {
	if id == operatorID {
		return response.NewBadRequest("cannot delete your own account")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return response.NewNotFound("user not found")
		}
		return nil
	})
}
