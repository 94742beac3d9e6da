package services

import (
	"errors"
	"strconv"

	"github.com/devfolio/backend/internal/models"
	"gorm.io/gorm"
)

type SystemConfigService struct {
	db *gorm.DB
}

func NewSystemConfigService(db *gorm.DB) *SystemConfigService {
	return &SystemConfigService{db: db}
}

func (s *SystemConfigService) Get(key string) (string, error) {
	var cfg models.SystemConfig
	if err := s.db.Where("`key` = ?", key).First(&cfg).Error; err != nil {
		return "", err
	}
	return cfg.Value, nil
}

func (s *SystemConfigService) GetWithDefault(key, defaultValue string) string {
	value, err := s.Get(key)
	if err != nil {
		return defaultValue
	}
	return value
}

func (s *SystemConfigService) GetIntWithDefault(key string, defaultValue int) int {
	value, err := s.Get(key)
	if err != nil {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func (s *SystemConfigService) GetBool(key string) bool {
	return s.GetWithDefault(key, "false") == "true"
}

func (s *SystemConfigService) Set(key, value string) error {
	var cfg models.SystemConfig
	err := s.db.Where("`key` = ?", key).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = models.SystemConfig{
			Key:   key,
			Value: value,
		}
		return s.db.Create(&cfg).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&cfg).Update("value", value).Error
}

func (s *SystemConfigService) GetByGroup(group string) ([]models.SystemConfig, error) {
	var configs []models.SystemConfig
	if err := s.db.Where("`group` = ?", group).Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// NotificationConfigResponse mirrors the notification group of system_configs.
// The SMTP password is never returned, only whether one is set.
type NotificationConfigResponse struct {
	EmailEnabled bool   `json:"email_enabled"`
	SMTPHost     string `json:"smtp_host"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPUsername string `json:"smtp_username"`
	PasswordSet  bool   `json:"password_set"`
	From         string `json:"from"`
	To           string `json:"to"`
	UseTLS       bool   `json:"use_tls"`
}

func (s *SystemConfigService) GetNotificationConfig() *NotificationConfigResponse {
	return &NotificationConfigResponse{
		EmailEnabled: s.GetBool("notify_email_enabled"),
		SMTPHost:     s.GetWithDefault("notify_email_host", ""),
		SMTPPort:     s.GetIntWithDefault("notify_email_port", 587),
		SMTPUsername: s.GetWithDefault("notify_email_username", ""),
		PasswordSet:  s.GetWithDefault("notify_email_password", "") != "",
		From:         s.GetWithDefault("notify_email_from", ""),
		To:           s.GetWithDefault("notify_email_to", ""),
		UseTLS:       s.GetBool("notify_email_use_tls"),
	}
}

type UpdateNotificationConfigRequest struct {
	EmailEnabled *bool   `json:"email_enabled"`
	SMTPHost     *string `json:"smtp_host"`
	SMTPPort     *int    `json:"smtp_port"`
	SMTPUsername *string `json:"smtp_username"`
	SMTPPassword *string `json:"smtp_password"`
	From         *string `json:"from"`
	To           *string `json:"to"`
	UseTLS       *bool   `json:"use_tls"`
}

func (s *SystemConfigService) UpdateNotificationConfig(req *UpdateNotificationConfigRequest) error {
	if req.EmailEnabled != nil {
		if err := s.Set("notify_email_enabled", strconv.FormatBool(*req.EmailEnabled)); err != nil {
			return err
		}
	}
	if req.SMTPHost != nil {
		if err := s.Set("notify_email_host", *req.SMTPHost); err != nil {
			return err
		}
	}
	if req.SMTPPort != nil {
		if err := s.Set("notify_email_port", strconv.Itoa(*req.SMTPPort)); err != nil {
			return err
		}
	}
	if req.SMTPUsername != nil {
		if err := s.Set("notify_email_username", *req.SMTPUsername); err != nil {
			return err
		}
	}
	if req.SMTPPassword != nil && *req.SMTPPassword != "" {
		if err := s.Set("notify_email_password", *req.SMTPPassword); err != nil {
			return err
		}
	}
	if req.From != nil {
		if err := s.Set("notify_email_from", *req.From); err != nil {
			return err
		}
	}
	if req.To != nil {
		if err := s.Set("notify_email_to", *req.To); err != nil {
			return err
		}
	}
	if req.UseTLS != nil {
		if err := s.Set("notify_email_use_tls", strconv.FormatBool(*req.UseTLS)); err != nil {
			return err
		}
	}
	return nil
}
