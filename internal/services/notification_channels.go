package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tiffinbox/internal/config"
	"tiffinbox/internal/infra"
	dbm "tiffinbox/internal/models/db_models"
)

// appChannel publishes notification events to the broker queue consumed by
// the UI gateway for in-app delivery.
type appChannel struct {
	mq *infra.RabbitMQ
}

func NewAppChannel(mq *infra.RabbitMQ) ChannelSender {
	return &appChannel{mq: mq}
}

func (a *appChannel) Channel() NotificationChannel { return ChannelApp }

type appEvent struct {
	UserID    uint   `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

func (a *appChannel) Send(ctx context.Context, user *dbm.User, title, message string) error {
	if a.mq == nil {
		return errors.New("message broker unavailable")
	}
	body, err := json.Marshal(appEvent{
		UserID:    user.ID,
		Title:     title,
		Message:   message,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return err
	}
	return a.mq.Publish(ctx, body)
}

// smsChannel posts to a Fast2SMS-compatible bulk endpoint. The same provider
// carries the whatsapp route, so both channels share this implementation.
type smsChannel struct {
	cfg     *config.Config
	client  *http.Client
	channel NotificationChannel
	route   string
}

func NewSMSChannel(cfg *config.Config) ChannelSender {
	return &smsChannel{
		cfg:     cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
		channel: ChannelSMS,
		route:   "q",
	}
}

func NewWhatsAppChannel(cfg *config.Config) ChannelSender {
	return &smsChannel{
		cfg:     cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
		channel: ChannelWhatsApp,
		route:   "whatsapp",
	}
}

func (s *smsChannel) Channel() NotificationChannel { return s.channel }

func (s *smsChannel) Send(ctx context.Context, user *dbm.User, title, message string) error {
	if s.cfg.SMSAPIKey == "" {
		return errors.New("sms provider not configured")
	}
	if user.Phone == "" {
		return fmt.Errorf("user %d has no phone number", user.ID)
	}

	form := url.Values{}
	form.Set("route", s.route)
	form.Set("numbers", user.Phone)
	form.Set("message", title+": "+message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.SMSBaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("authorization", s.cfg.SMSAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms provider returned %d", resp.StatusCode)
	}
	return nil
}

// emailChannel wraps the SMTP mail service.
type emailChannel struct {
	mail IMailService
}

func NewEmailChannel(mail IMailService) ChannelSender {
	return &emailChannel{mail: mail}
}

func (e *emailChannel) Channel() NotificationChannel { return ChannelEmail }

func (e *emailChannel) Send(ctx context.Context, user *dbm.User, title, message string) error {
	if user.Email == "" {
		return fmt.Errorf("user %d has no email address", user.ID)
	}
	return e.mail.SendNotification(user.Email, title, message)
}
