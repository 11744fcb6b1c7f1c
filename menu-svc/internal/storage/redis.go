package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"qrmenu-platform/menu-svc/internal/domain"
	"qrmenu-platform/menu-svc/internal/service"

	"github.com/redis/go-redis/v9"
)

// RedisCache keeps rendered public menus so that scans do not hit Postgres.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) MenuKey(slug string) string {
	return "menu:" + slug
}

func (c *RedisCache) GetMenu(ctx context.Context, slug string) (*domain.PublicMenu, error) {
	raw, err := c.Client.Get(ctx, c.MenuKey(slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var menu domain.PublicMenu
	if err := json.Unmarshal(raw, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (c *RedisCache) SetMenu(ctx context.Context, slug string, menu *domain.PublicMenu) error {
	payload, err := json.Marshal(menu)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.MenuKey(slug), payload, c.TTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, slug string) error {
	return c.Client.Del(ctx, c.MenuKey(slug)).Err()
}

var _ service.MenuCache = (*RedisCache)(nil)
