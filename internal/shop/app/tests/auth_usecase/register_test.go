package authusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goshop/internal/shop/app"
	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	testEmail := "test@example.com"
	testPassword := "password123"
	hashedPassword := "hashed_password"
	generatedUserID := "generated-user-id"

	now := time.Now()
	accessExpires := now.Add(15 * time.Minute)
	refreshExpires := now.Add(24 * time.Hour)

	accessToken := "access-token-123"
	refreshToken := "refresh-token-456"

	createdUser := &entities.User{
		ID:           generatedUserID,
		Email:        testEmail,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	t.Run("Успешная регистрация", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenRepo := new(mockTokenRepository)
		blacklist := new(mockTokenBlacklist)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)

		userRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
		passwordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.Email == testEmail && u.PasswordHash == hashedPassword
		})).Return(createdUser, nil).Once()
		tokenSvc.On("GenerateAccessToken", mock.Anything, generatedUserID).
			Return(accessToken, accessExpires, nil).Once()
		tokenSvc.On("GenerateRefreshToken", mock.Anything, generatedUserID).
			Return(refreshToken, refreshExpires, nil).Once()
		tokenRepo.On("StoreRefreshToken", mock.Anything, mock.MatchedBy(func(tok *services.RefreshToken) bool {
			return tok.UserID == generatedUserID && tok.Token == refreshToken && !tok.IsRevoked
		})).Return(nil).Once()

		useCase := app.NewAuthUseCase(userRepo, tokenRepo, blacklist, passwordSvc, tokenSvc)

		user, pair, err := useCase.Register(ctx, testEmail, testPassword, testPassword)

		require.NoError(t, err)
		require.NotNil(t, user)
		require.NotNil(t, pair)
		assert.Equal(t, generatedUserID, user.ID)
		assert.Equal(t, accessToken, pair.AccessToken)
		assert.Equal(t, refreshToken, pair.RefreshToken)

		userRepo.AssertExpectations(t)
		tokenRepo.AssertExpectations(t)
		passwordSvc.AssertExpectations(t)
		tokenSvc.AssertExpectations(t)
	})

	t.Run("Пароль из 8 символов проходит валидацию", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenRepo := new(mockTokenRepository)
		blacklist := new(mockTokenBlacklist)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)

		boundaryPassword := "12345678"
		userRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
		passwordSvc.On("Hash", mock.Anything, boundaryPassword).Return(hashedPassword, nil).Once()
		userRepo.On("Create", mock.Anything, mock.Anything).Return(createdUser, nil).Once()
		tokenSvc.On("GenerateAccessToken", mock.Anything, generatedUserID).
			Return(accessToken, accessExpires, nil).Once()
		tokenSvc.On("GenerateRefreshToken", mock.Anything, generatedUserID).
			Return(refreshToken, refreshExpires, nil).Once()
		tokenRepo.On("StoreRefreshToken", mock.Anything, mock.Anything).Return(nil).Once()

		useCase := app.NewAuthUseCase(userRepo, tokenRepo, blacklist, passwordSvc, tokenSvc)

		_, _, err := useCase.Register(ctx, testEmail, boundaryPassword, boundaryPassword)
		require.NoError(t, err)
	})

	t.Run("Нарушения собираются по всем полям сразу", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenRepo := new(mockTokenRepository)
		blacklist := new(mockTokenBlacklist)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)

		useCase := app.NewAuthUseCase(userRepo, tokenRepo, blacklist, passwordSvc, tokenSvc)

		user, pair, err := useCase.Register(ctx, "not-an-email", "short", "different")

		assert.Nil(t, user)
		assert.Nil(t, pair)
		require.Error(t, err)

		var violations entities.ValidationErrors
		require.True(t, errors.As(err, &violations))
		assert.Len(t, violations, 3)
		assert.Contains(t, violations, "email")
		assert.Contains(t, violations, "password")
		assert.Contains(t, violations, "password_confirmation")

		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		passwordSvc.AssertNotCalled(t, "Hash", mock.Anything, mock.Anything)
	})

	t.Run("Пароль из 7 символов отклоняется", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenRepo := new(mockTokenRepository)
		blacklist := new(mockTokenBlacklist)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)

		userRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()

		useCase := app.NewAuthUseCase(userRepo, tokenRepo, blacklist, passwordSvc, tokenSvc)

		_, _, err := useCase.Register(ctx, testEmail, "1234567", "1234567")

		var violations entities.ValidationErrors
		require.True(t, errors.As(err, &violations))
		assert.Contains(t, violations, "password")
	})

	t.Run("Занятый email попадает в нарушения валидации", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenRepo := new(mockTokenRepository)
		blacklist := new(mockTokenBlacklist)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)

		userRepo.On("FindByEmail", mock.Anything, testEmail).Return(createdUser, nil).Once()

		useCase := app.NewAuthUseCase(userRepo, tokenRepo, blacklist, passwordSvc, tokenSvc)

		user, pair, err := useCase.Register(ctx, testEmail, testPassword, testPassword)

		assert.Nil(t, user)
		assert.Nil(t, pair)

		var violations entities.ValidationErrors
		require.True(t, errors.As(err, &violations))
		assert.Contains(t, violations, "email")

		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
