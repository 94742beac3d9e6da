package services

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/pkg/logger"
	"gorm.io/gorm"
)

// NotificationService fans a contact form submission out to the configured
// channels: email (settings in system_configs) and Telegram (settings in the
// static config).
type NotificationService struct {
	email    *EmailService
	telegram *TelegramClient
}

func NewNotificationService(db *gorm.DB, telegramCfg *config.TelegramConfig) *NotificationService {
	svc := &NotificationService{
		email: NewEmailService(db),
	}
	if telegramCfg != nil && telegramCfg.Enabled && telegramCfg.BotToken != "" {
		svc.telegram = NewTelegramClient(telegramCfg.BotToken, telegramCfg.ChatID)
	}
	return svc
}

// ProcessNotifyTask delivers the notification for one submission. Channel
// failures are logged but do not fail the task, so one broken channel cannot
// exhaust the retry budget for the other.
func (s *NotificationService) ProcessNotifyTask(ctx context.Context, task *NotifyTask) error {
	if err := s.email.SendContactNotification(task); err != nil {
		logger.Warnf("contact notification email failed: %v", err)
	}

	if s.telegram != nil {
		s.telegram.SendContactNotification(task)
	}

	return nil
}

// TelegramClient sends messages through the Telegram Bot API.
type TelegramClient struct {
	token  string
	chatID int64
	http   *http.Client
}

func NewTelegramClient(token string, chatID int64) *TelegramClient {
	return &TelegramClient{
		token:  token,
		chatID: chatID,
		http:   &http.Client{Timeout: 35 * time.Second},
	}
}

func (c *TelegramClient) SendContactNotification(task *NotifyTask) {
	var sb strings.Builder
	sb.WriteString("<b>New contact message</b>\n\n")
	sb.WriteString(fmt.Sprintf("<b>From:</b> %s (%s)\n", html.EscapeString(task.Name), html.EscapeString(task.Email)))
	sb.WriteString(fmt.Sprintf("<b>Subject:</b> %s\n\n", html.EscapeString(task.Subject)))
	sb.WriteString(html.EscapeString(task.Message))

	c.SendMessage(c.chatID, sb.String())
}

func (c *TelegramClient) SendMessage(chatID int64, text string) {
	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", c.token)

	resp, err := c.http.PostForm(endpoint, url.Values{
		"chat_id":                  {fmt.Sprintf("%d", chatID)},
		"text":                     {text},
		"parse_mode":               {"HTML"},
		"disable_web_page_preview": {"true"},
	})
	if err != nil {
		logger.Warnf("telegram send: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warnf("telegram send: unexpected status %d", resp.StatusCode)
	}
}
