package bcryptservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	adapters "goshop/internal/shop/adapters/services"
	"goshop/internal/shop/domain/services"
)

func TestServiceBcrypt_Hash(t *testing.T) {
	ctx := context.Background()

	t.Run("Хэш пароля проходит обратную проверку", func(t *testing.T) {
		service := adapters.NewBcrypt(bcrypt.MinCost)

		hash, err := service.Hash(ctx, "password123")

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "password123", hash)

		ok, err := service.Verify(ctx, "password123", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Пустой пароль отклоняется", func(t *testing.T) {
		service := adapters.NewBcrypt(bcrypt.MinCost)

		hash, err := service.Hash(ctx, "")

		assert.Empty(t, hash)
		require.ErrorIs(t, err, services.ErrInvalidPassword)
	})

	t.Run("Короткий пароль отклоняется", func(t *testing.T) {
		service := adapters.NewBcrypt(bcrypt.MinCost)

		hash, err := service.Hash(ctx, "short")

		assert.Empty(t, hash)
		require.ErrorIs(t, err, services.ErrInvalidPassword)
	})

	t.Run("Некорректная стоимость заменяется значением по умолчанию", func(t *testing.T) {
		service := adapters.NewBcrypt(-1)

		hash, err := service.Hash(ctx, "password123")

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
	})
}

func TestServiceBcrypt_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("Неверный пароль дает false без ошибки", func(t *testing.T) {
		service := adapters.NewBcrypt(bcrypt.MinCost)

		hash, err := service.Hash(ctx, "password123")
		require.NoError(t, err)

		ok, err := service.Verify(ctx, "otherpassword", hash)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Пустой хэш отклоняется", func(t *testing.T) {
		service := adapters.NewBcrypt(bcrypt.MinCost)

		ok, err := service.Verify(ctx, "password123", "")

		assert.False(t, ok)
		require.ErrorIs(t, err, services.ErrInvalidPassword)
	})

	t.Run("Поврежденный хэш дает ошибку", func(t *testing.T) {
		service := adapters.NewBcrypt(bcrypt.MinCost)

		ok, err := service.Verify(ctx, "password123", "not-a-bcrypt-hash")

		assert.False(t, ok)
		assert.Error(t, err)
	})
}
