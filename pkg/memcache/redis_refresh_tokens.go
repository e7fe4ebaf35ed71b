package memcache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRefreshTokens keeps the single-slot semantics of RefreshTokens but
// survives process restarts. SET with TTL overwrites the previous slot, which
// is exactly the last-writer-wins behaviour we want.
type RedisRefreshTokens struct {
	client *redis.Client
}

func NewRedisRefreshTokens(client *redis.Client) *RedisRefreshTokens {
	return &RedisRefreshTokens{client: client}
}

func key(userID uint) string {
	return fmt.Sprintf("refresh_token:%d", userID)
}

func (s *RedisRefreshTokens) Set(userID uint, token string, ttl time.Duration) {
	if err := s.client.Set(context.Background(), key(userID), token, ttl).Err(); err != nil {
		log.Printf("redis: set refresh token for user %d: %v", userID, err)
	}
}

func (s *RedisRefreshTokens) Get(userID uint) string {
	val, err := s.client.Get(context.Background(), key(userID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis: get refresh token for user %d: %v", userID, err)
		}
		return ""
	}
	return val
}

func (s *RedisRefreshTokens) Delete(userID uint) {
	if err := s.client.Del(context.Background(), key(userID)).Err(); err != nil {
		log.Printf("redis: delete refresh token for user %d: %v", userID, err)
	}
}
