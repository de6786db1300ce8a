package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
)

// DefaultKey ключ каталога услуг в Redis
const DefaultKey = "dental:services:catalog"

// cachedService запись услуги в кэше
type cachedService struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	MinTime int      `json:"minTime"`
	Price   *float64 `json:"price,omitempty"`
}

// RedisCache кэш каталога услуг в Redis
type RedisCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisCache создает кэш каталога
func NewRedisCache(client *redis.Client, key string, ttl time.Duration) *RedisCache {
	if key == "" {
		key = DefaultKey
	}
	return &RedisCache{client: client, key: key, ttl: ttl}
}

// Get читает каталог из Redis
func (c *RedisCache) Get(ctx context.Context) ([]domain.Service, bool, error) {
	payload, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get from cache: %w", err)
	}

	services, err := decode(payload)
	if err != nil {
		return nil, false, err
	}
	return services, true, nil
}

// Set сохраняет каталог в Redis на ttl
func (c *RedisCache) Set(ctx context.Context, services []domain.Service) error {
	payload, err := encode(services)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in cache: %w", err)
	}
	return nil
}

func encode(services []domain.Service) ([]byte, error) {
	cached := make([]cachedService, len(services))
	for i, service := range services {
		cached[i] = cachedService{ID: service.ID, Name: service.Name, MinTime: service.MinTime, Price: service.Price}
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return nil, fmt.Errorf("failed to encode services: %w", err)
	}
	return payload, nil
}

func decode(payload []byte) ([]domain.Service, error) {
	var cached []cachedService
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, fmt.Errorf("failed to decode cached services: %w", err)
	}

	services := make([]domain.Service, len(cached))
	for i, service := range cached {
		services[i] = domain.Service{ID: service.ID, Name: service.Name, MinTime: service.MinTime, Price: service.Price}
	}
	return services, nil
}

// NoopCache кэш-заглушка, когда Redis отключен
type NoopCache struct{}

func (NoopCache) Get(context.Context) ([]domain.Service, bool, error) { return nil, false, nil }
func (NoopCache) Set(context.Context, []domain.Service) error { return nil }
