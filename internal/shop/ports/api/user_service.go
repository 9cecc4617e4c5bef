package api

import (
	"context"

	"goshop/internal/shop/domain/entities"
)

// ProfileUpdate описывает изменяемые поля профиля.
// Пустое значение означает "оставить без изменений".
type ProfileUpdate struct {
	Email                string
	Password             string
	PasswordConfirmation string
}

// UserUseCase определяет основной порт для пользовательских операций.
type UserUseCase interface {
	GetProfile(ctx context.Context, userID string) (*entities.User, error)

	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*entities.User, error)

	// DeleteAccount удаляет учетную запись; заказы удаляются каскадно,
	// все refresh-токены пользователя отзываются.
	DeleteAccount(ctx context.Context, userID string) error
}
