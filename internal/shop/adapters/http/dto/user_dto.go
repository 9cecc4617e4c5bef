package dto

import (
	"time"

	"goshop/internal/shop/domain/entities"
)

// UserResponse содержит данные профиля пользователя.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateProfileRequest содержит изменяемые поля профиля.
type UpdateProfileRequest struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// NewUserResponse преобразует пользователя в ответ API.
func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
