// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goshop/internal/shop/adapters/http/httperr"
	"goshop/internal/shop/ports/services"
	"goshop/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"

	// UserIDKey - ключ Locals с идентификатором аутентифицированного пользователя.
	UserIDKey = "userID"

	bearerPrefix = "Bearer "
)

// NewAuthMiddleware создает промежуточное ПО для проверки аутентификации.
// Идентификатор пользователя из валидного токена кладется в Locals.
func NewAuthMiddleware(tokenService services.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return httperr.Unauthorized(ctx, ErrorNoAuthHeader)
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return httperr.Unauthorized(ctx, ErrorInvalidTokenFormat)
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)

		userID, err := tokenService.ValidateAccessToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return httperr.Unauthorized(ctx, ErrorInvalidToken)
		}

		ctx.Locals(UserIDKey, userID)

		return ctx.Next()
	}
}

// UserID возвращает идентификатор пользователя, установленный NewAuthMiddleware.
func UserID(ctx fiber.Ctx) (string, bool) {
	userID, ok := ctx.Locals(UserIDKey).(string)
	return userID, ok && userID != ""
}
