package infra

import (
	"github.com/redis/go-redis/v9"

	"tiffinbox/internal/config"
)

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
}
