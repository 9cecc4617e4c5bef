// Package entities определяет доменные сущности магазина.
package entities

import (
	"errors"
	"time"
)

// Определяем ошибки домена пользователя как константы.
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooShort = errors.New("password must contain at least 8 characters")
	ErrPasswordMismatch = errors.New("password confirmation does not match")
	ErrUserNotFound     = errors.New("user not found")
)

// User представляет основную сущность домена пользователя.
// Пароль хранится только в виде bcrypt-хэша.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
