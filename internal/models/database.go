package models

import (
	"fmt"

	"github.com/devfolio/backend/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&User{},
		&Project{},
		&Skill{},
		&Category{},
		&Blog{},
		&Video{},
		&Contact{},
		&RefreshToken{},
		&SystemConfig{},
		&SystemLog{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultData creates default system config rows if not present.
func SeedDefaultData() error {
	defaultConfigs := []SystemConfig{
		{Key: "notify_email_enabled", Value: "false", Type: "bool", Group: "notification", Label: "Email Contact Notifications"},
		{Key: "notify_email_host", Value: "", Type: "string", Group: "notification", Label: "SMTP Host"},
		{Key: "notify_email_port", Value: "587", Type: "int", Group: "notification", Label: "SMTP Port"},
		{Key: "notify_email_username", Value: "", Type: "string", Group: "notification", Label: "SMTP Username"},
		{Key: "notify_email_password", Value: "", Type: "string", Group: "notification", Label: "SMTP Password"},
		{Key: "notify_email_from", Value: "", Type: "string", Group: "notification", Label: "Sender Address"},
		{Key: "notify_email_to", Value: "", Type: "string", Group: "notification", Label: "Recipient Address"},
		{Key: "notify_email_use_tls", Value: "false", Type: "bool", Group: "notification", Label: "Use SSL/TLS"},
		{Key: "log_retention_days", Value: "30", Type: "int", Group: "system", Label: "System Log Retention Days"},
	}

	for _, cfg := range defaultConfigs {
		var count int64
		DB.Model(&SystemConfig{}).Where("`key` = ?", cfg.Key).Count(&count)
		if count == 0 {
			if err := DB.Create(&cfg).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
