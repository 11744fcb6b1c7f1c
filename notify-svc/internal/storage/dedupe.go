package storage

import (
	"context"
	"time"

	"qrmenu-platform/notify-svc/internal/service"

	"github.com/redis/go-redis/v9"
)

// RedisDeduper remembers handled messages for TTL so that a redelivery after
// a consumer restart does not send the same email twice.
type RedisDeduper struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{Client: client, TTL: ttl}
}

func (d *RedisDeduper) Key(messageKey string) string {
	return "notify:seen:" + messageKey
}

func (d *RedisDeduper) FirstSeen(ctx context.Context, key string) (bool, error) {
	return d.Client.SetNX(ctx, d.Key(key), time.Now().Unix(), d.TTL).Result()
}

var _ service.Deduper = (*RedisDeduper)(nil)
