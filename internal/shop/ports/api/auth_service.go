// Package api определяет основные порты приложения.
package api

import (
	"context"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	// Register создает пользователя и сразу выдает пару токенов.
	Register(ctx context.Context, email, password, passwordConfirmation string) (*entities.User, *services.TokenPair, error)

	// Login возвращает одинаковую ошибку для неизвестного email и неверного
	// пароля, чтобы не допускать перечисления учетных записей.
	Login(ctx context.Context, email, password string) (*entities.User, *services.TokenPair, error)

	RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error)

	Logout(ctx context.Context, refreshToken string) error
}
