package services

import (
	"context"
	"time"
)

// TokenBlacklist определяет быстрый черный список refresh-токенов.
// Долговечная отметка об отзыве хранится в Postgres; черный список
// служит горячим кэшем проверки при обновлении токенов.
type TokenBlacklist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error

	Contains(ctx context.Context, token string) (bool, error)
}
