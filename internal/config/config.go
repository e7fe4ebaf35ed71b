package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	TokenStoreMemory = "memory"
	TokenStoreRedis  = "redis"
)

type Config struct {
	Port string
	Env  string // "development" | "production"

	// "postgres" | "memory" — picked once at startup, never mutated after.
	StorageBackend string
	// "memory" | "redis"
	TokenStoreBackend string

	PostgresURL string
	RedisAddr   string
	RedisDB     int
	RabbitMQURL string

	NotificationQueue string

	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string

	SMSAPIKey  string
	SMSBaseURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string

	// Flat delivery charge added to every order total, in minor units (paise).
	DeliveryChargeMinor int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}

	return &Config{
		Port:              envOr("PORT", "8080"),
		Env:               envOr("APP_ENV", "development"),
		StorageBackend:    envOr("STORAGE_BACKEND", "postgres"),
		TokenStoreBackend: envOr("TOKEN_STORE", "memory"),

		PostgresURL: os.Getenv("POSTGRES_URL"),
		RedisAddr:   envOr("REDIS_ADDR", "localhost:6379"),
		RedisDB:     envInt("REDIS_DB", 0),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),

		NotificationQueue: envOr("NOTIFICATION_QUEUE", "user_notifications"),

		RazorpayKeyID:         os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayWebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),

		SMSAPIKey:  os.Getenv("SMS_API_KEY"),
		SMSBaseURL: envOr("SMS_BASE_URL", "https://www.fast2sms.com/dev/bulkV2"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     envInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		SMTPFromName: envOr("SMTP_FROM_NAME", "TiffinBox"),

		DeliveryChargeMinor: int64(envInt("DELIVERY_CHARGE_MINOR", 4000)),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
