// Package repositories определяет порты уровня хранения данных.
package repositories

import (
	"context"

	"goshop/internal/shop/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователя.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	Update(ctx context.Context, user *entities.User) (*entities.User, error)

	Delete(ctx context.Context, id string) error
}
