package authusecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goshop/internal/shop/app"
	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	testEmail := "test@example.com"
	testPassword := "password123"
	hashedPassword := "hashed_password"
	userID := "user-id-1"

	now := time.Now()
	existingUser := &entities.User{
		ID:           userID,
		Email:        testEmail,
		PasswordHash: hashedPassword,
	}

	t.Run("Успешный вход", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenRepo := new(mockTokenRepository)
		blacklist := new(mockTokenBlacklist)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)

		userRepo.On("FindByEmail", mock.Anything, testEmail).Return(existingUser, nil).Once()
		passwordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(true, nil).Once()
		tokenSvc.On("GenerateAccessToken", mock.Anything, userID).
			Return("access", now.Add(15*time.Minute), nil).Once()
		tokenSvc.On("GenerateRefreshToken", mock.Anything, userID).
			Return("refresh", now.Add(24*time.Hour), nil).Once()
		tokenRepo.On("StoreRefreshToken", mock.Anything, mock.Anything).Return(nil).Once()

		useCase := app.NewAuthUseCase(userRepo, tokenRepo, blacklist, passwordSvc, tokenSvc)

		user, pair, err := useCase.Login(ctx, testEmail, testPassword)

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "access", pair.AccessToken)
		assert.Equal(t, "refresh", pair.RefreshToken)

		userRepo.AssertExpectations(t)
		passwordSvc.AssertExpectations(t)
	})

	t.Run("Неизвестный email и неверный пароль неразличимы", func(t *testing.T) {
		unknownEmailErr := func() error {
			userRepo := new(mockUserRepository)
			tokenRepo := new(mockTokenRepository)
			blacklist := new(mockTokenBlacklist)
			passwordSvc := new(mockPasswordService)
			tokenSvc := new(mockTokenService)

			userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
				Return(nil, entities.ErrUserNotFound).Once()

			useCase := app.NewAuthUseCase(userRepo, tokenRepo, blacklist, passwordSvc, tokenSvc)
			_, _, err := useCase.Login(ctx, "ghost@example.com", testPassword)
			return err
		}()

		wrongPasswordErr := func() error {
			userRepo := new(mockUserRepository)
			tokenRepo := new(mockTokenRepository)
			blacklist := new(mockTokenBlacklist)
			passwordSvc := new(mockPasswordService)
			tokenSvc := new(mockTokenService)

			userRepo.On("FindByEmail", mock.Anything, testEmail).Return(existingUser, nil).Once()
			passwordSvc.On("Verify", mock.Anything, "wrong-password", hashedPassword).
				Return(false, nil).Once()

			useCase := app.NewAuthUseCase(userRepo, tokenRepo, blacklist, passwordSvc, tokenSvc)
			_, _, err := useCase.Login(ctx, testEmail, "wrong-password")
			return err
		}()

		require.ErrorIs(t, unknownEmailErr, services.ErrInvalidCredentials)
		require.ErrorIs(t, wrongPasswordErr, services.ErrInvalidCredentials)
		assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
	})
}
