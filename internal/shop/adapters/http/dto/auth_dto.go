// Package dto содержит объекты передачи данных HTTP API магазина.
package dto

import (
	"time"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest содержит данные для обновления токенов.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutRequest содержит данные для выхода пользователя.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse содержит данные о токенах.
type TokenResponse struct {
	UserID       string    `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthResponse содержит данные пользователя вместе с токенами.
type AuthResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

// NewTokenResponse преобразует пару токенов в ответ API.
func NewTokenResponse(pair *services.TokenPair) TokenResponse {
	return TokenResponse{
		UserID:       pair.UserID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}
}

// NewAuthResponse преобразует пользователя с токенами в ответ API.
func NewAuthResponse(user *entities.User, pair *services.TokenPair) AuthResponse {
	return AuthResponse{
		User:   NewUserResponse(user),
		Tokens: NewTokenResponse(pair),
	}
}
