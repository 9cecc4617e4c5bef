package jwtservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapters "goshop/internal/shop/adapters/services"
	"goshop/internal/shop/domain/services"
	"goshop/pkg/logger"
)

const (
	testSecretKey = "test-secret-key"
	testUserID    = "user-uuid-1"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestServiceJWT_GenerateAndValidate(t *testing.T) {
	ctx := testContext(t)

	t.Run("Сгенерированный access-токен проходит проверку", func(t *testing.T) {
		service := adapters.NewJWT(testSecretKey, 15*time.Minute, 24*time.Hour)

		token, expiresAt, err := service.GenerateAccessToken(ctx, testUserID)

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

		userID, err := service.ValidateAccessToken(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, testUserID, userID)
	})

	t.Run("Refresh-токен живет дольше access-токена", func(t *testing.T) {
		service := adapters.NewJWT(testSecretKey, 15*time.Minute, 24*time.Hour)

		_, accessExpiry, err := service.GenerateAccessToken(ctx, testUserID)
		require.NoError(t, err)

		_, refreshExpiry, err := service.GenerateRefreshToken(ctx, testUserID)
		require.NoError(t, err)

		assert.True(t, refreshExpiry.After(accessExpiry))
	})

	t.Run("Пустой секретный ключ блокирует генерацию", func(t *testing.T) {
		service := adapters.NewJWT("", 15*time.Minute, 24*time.Hour)

		token, _, err := service.GenerateAccessToken(ctx, testUserID)

		assert.Empty(t, token)
		require.ErrorIs(t, err, services.ErrGeneratingJWTToken)
	})
}

func TestServiceJWT_ValidateAccessToken(t *testing.T) {
	ctx := testContext(t)

	t.Run("Истекший токен дает ErrExpiredJWTToken", func(t *testing.T) {
		service := adapters.NewJWT(testSecretKey, -time.Minute, 24*time.Hour)

		token, _, err := service.GenerateAccessToken(ctx, testUserID)
		require.NoError(t, err)

		userID, err := service.ValidateAccessToken(ctx, token)

		assert.Empty(t, userID)
		require.ErrorIs(t, err, services.ErrExpiredJWTToken)
	})

	t.Run("Токен с чужой подписью отклоняется", func(t *testing.T) {
		service := adapters.NewJWT(testSecretKey, 15*time.Minute, 24*time.Hour)
		otherService := adapters.NewJWT("other-secret-key", 15*time.Minute, 24*time.Hour)

		token, _, err := otherService.GenerateAccessToken(ctx, testUserID)
		require.NoError(t, err)

		userID, err := service.ValidateAccessToken(ctx, token)

		assert.Empty(t, userID)
		require.ErrorIs(t, err, services.ErrInvalidJWTToken)
	})

	t.Run("Мусорная строка отклоняется", func(t *testing.T) {
		service := adapters.NewJWT(testSecretKey, 15*time.Minute, 24*time.Hour)

		userID, err := service.ValidateAccessToken(ctx, "not.a.token")

		assert.Empty(t, userID)
		require.ErrorIs(t, err, services.ErrInvalidJWTToken)
	})

	t.Run("Токен без user_id отклоняется", func(t *testing.T) {
		service := adapters.NewJWT(testSecretKey, 15*time.Minute, 24*time.Hour)

		token, _, err := service.GenerateAccessToken(ctx, "")
		require.NoError(t, err)

		userID, err := service.ValidateAccessToken(ctx, token)

		assert.Empty(t, userID)
		require.ErrorIs(t, err, services.ErrInvalidJWTToken)
	})
}
