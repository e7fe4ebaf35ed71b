package services

import (
	"context"
	"log"
	"sync"

	dbm "tiffinbox/internal/models/db_models"
	"tiffinbox/internal/repositories"
)

type NotificationChannel string

const (
	ChannelApp      NotificationChannel = "app"
	ChannelSMS      NotificationChannel = "sms"
	ChannelWhatsApp NotificationChannel = "whatsapp"
	ChannelEmail    NotificationChannel = "email"
)

// ChannelSender delivers a notification over a single channel.
type ChannelSender interface {
	Channel() NotificationChannel
	Send(ctx context.Context, user *dbm.User, title, message string) error
}

// NotificationService fans a message out to the requested channels with
// at-most-once, best-effort semantics: each channel runs in its own
// goroutine, failures are logged, and no failure blocks or fails a sibling
// channel or the caller.
type NotificationService interface {
	Notify(ctx context.Context, userID uint, channels []NotificationChannel, title, message string)
}

type notificationService struct {
	users   repositories.UserRepository
	senders map[NotificationChannel]ChannelSender
}

func NewNotificationService(users repositories.UserRepository, senders []ChannelSender) NotificationService {
	byChannel := make(map[NotificationChannel]ChannelSender, len(senders))
	for _, s := range senders {
		byChannel[s.Channel()] = s
	}
	return &notificationService{
		users:   users,
		senders: byChannel,
	}
}

func (n *notificationService) Notify(ctx context.Context, userID uint, channels []NotificationChannel, title, message string) {
	user, err := n.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		log.Printf("notify: user %d not resolvable, dropping notification: %v", userID, err)
		return
	}

	var wg sync.WaitGroup
	for _, ch := range channels {
		sender, ok := n.senders[ch]
		if !ok {
			log.Printf("notify: no sender configured for channel %q", ch)
			continue
		}
		wg.Add(1)
		go func(s ChannelSender) {
			defer wg.Done()
			if err := s.Send(ctx, user, title, message); err != nil {
				log.Printf("notify: %s delivery to user %d failed: %v", s.Channel(), user.ID, err)
			}
		}(sender)
	}
	wg.Wait()
}
