package notification_fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"tiffinbox/internal/config"
	"tiffinbox/internal/infra"
	"tiffinbox/internal/repositories"
	"tiffinbox/internal/services"
)

var Module = fx.Provide(
	provideRabbitMQ, services.NewSMTPMailService, provideNotificationService)

// provideRabbitMQ returns nil when the broker is unreachable; the app channel
// reports per-send errors and the rest of the fan-out keeps working.
func provideRabbitMQ(lc fx.Lifecycle, cfg *config.Config) *infra.RabbitMQ {
	mq, err := infra.NewRabbitMQ(cfg)
	if err != nil {
		log.Printf("rabbitmq unavailable, in-app notifications disabled: %v", err)
		return nil
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			mq.Close()
			return nil
		},
	})
	return mq
}

func provideNotificationService(
	cfg *config.Config,
	users repositories.UserRepository,
	mq *infra.RabbitMQ,
	mail services.IMailService,
) services.NotificationService {
	senders := []services.ChannelSender{
		services.NewAppChannel(mq),
		services.NewSMSChannel(cfg),
		services.NewWhatsAppChannel(cfg),
		services.NewEmailChannel(mail),
	}
	return services.NewNotificationService(users, senders)
}
