// Package cache содержит черный список токенов на основе Redis.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"goshop/internal/shop/ports/services"
	"goshop/pkg/db/redis"
	"goshop/pkg/logger"
)

// Константы для логирования.
const (
	logMethodAdd      = "add"
	logMethodContains = "contains"

	errFailedToAdd   = "failed to add token to blacklist"
	errFailedToCheck = "failed to check token in blacklist"

	blacklistKeyPrefix = "blacklist:"
	blacklistedValue   = "1"
)

// RedisBlacklist реализует интерфейс TokenBlacklist с использованием Redis.
// Ключ строится по хэшу токена, чтобы не хранить сам токен в кэше.
type RedisBlacklist struct {
	client *redis.Client
}

// NewRedisBlacklist создает новый черный список на основе Redis.
func NewRedisBlacklist(client *redis.Client) services.TokenBlacklist {
	return &RedisBlacklist{client: client}
}

// tokenKey вычисляет ключ Redis для токена.
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return blacklistKeyPrefix + hex.EncodeToString(sum[:])
}

// Add помещает токен в черный список на время ttl.
// Токен с истекшим сроком в список не попадает: его отклонит проверка подписи.
func (b *RedisBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	log := logger.Log(ctx).With(zap.String("method", logMethodAdd))

	if ttl <= 0 {
		return nil
	}

	if err := b.client.Set(ctx, tokenKey(token), blacklistedValue, ttl); err != nil {
		log.Error(ctx, errFailedToAdd, zap.Error(err))
		return fmt.Errorf("%s: %w", errFailedToAdd, err)
	}

	return nil
}

// Contains проверяет наличие токена в черном списке.
func (b *RedisBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", logMethodContains))

	_, err := b.client.Get(ctx, tokenKey(token))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		log.Error(ctx, errFailedToCheck, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errFailedToCheck, err)
	}

	return true, nil
}
