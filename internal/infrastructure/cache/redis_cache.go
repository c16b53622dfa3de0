// Package cache implementa ports.ResultCache sobre Redis y, sin Redis, en memoria.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
)

// VersionKey contador de versión de datos; cada escritura lo incrementa.
const VersionKey = "analytics:version"

var _ ports.ResultCache = (*RedisCache)(nil)

// RedisCache resultados serializados como JSON con expiración.
type RedisCache struct {
	client redis.UniversalClient
}

// NewRedisCache construye la caché sobre un cliente ya conectado.
func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

// Connect crea el cliente y verifica la conexión con PING.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

// Get decodifica en dest. found=false si la clave no existe.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("redis decode %s: %w", key, err)
	}
	return true, nil
}

// Set guarda value como JSON.
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Version valor actual del contador; 0 si nunca se incrementó.
func (c *RedisCache) Version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, VersionKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis version: %w", err)
	}
	return v, nil
}

// BumpVersion INCR atómico; las claves de la versión anterior expiran solas.
func (c *RedisCache) BumpVersion(ctx context.Context) (int64, error) {
	v, err := c.client.Incr(ctx, VersionKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr version: %w", err)
	}
	return v, nil
}
