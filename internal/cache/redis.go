package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zvrva/tourbooking/config"
	"github.com/zvrva/tourbooking/internal/domain"
)

type RedisCache struct {
	client      *redis.Client
	packagesTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, packagesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		packagesTTL: packagesTTL,
	}
}

func (c *RedisCache) GetPackages(ctx context.Context) ([]domain.Package, error) {
	data, err := c.client.Get(ctx, packagesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var packages []domain.Package
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (c *RedisCache) SetPackages(ctx context.Context, packages []domain.Package) error {
	payload, err := json.Marshal(packages)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, packagesKey(), payload, c.packagesTTL).Err()
}

// InvalidatePackages drops the cached list after a catalog change.
func (c *RedisCache) InvalidatePackages(ctx context.Context) error {
	return c.client.Del(ctx, packagesKey()).Err()
}

func packagesKey() string {
	return "cache:packages"
}
