// Package httperr преобразует доменные ошибки в ответы HTTP API.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
)

const msgInternalError = "internal server error"

// statusOf возвращает код статуса для известных доменных ошибок.
func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidRefreshToken),
		errors.Is(err, services.ErrRevokedRefreshToken),
		errors.Is(err, services.ErrInvalidJWTToken),
		errors.Is(err, services.ErrExpiredJWTToken):
		return http.StatusUnauthorized
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrCategoryNotFound),
		errors.Is(err, entities.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrInsufficientStock),
		errors.Is(err, services.ErrEmailAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond отправляет JSON с кодом статуса, соответствующим ошибке.
// Ошибки валидации возвращаются картой "поле - сообщение" с кодом 400.
func Respond(ctx fiber.Ctx, err error) error {
	var validationErrs entities.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErrs,
		})
	}

	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = msgInternalError
	}

	return ctx.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// BadRequest отправляет ответ о некорректном запросе.
func BadRequest(ctx fiber.Ctx, message string) error {
	return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

// Unauthorized отправляет ответ об отсутствии аутентификации.
func Unauthorized(ctx fiber.Ctx, message string) error {
	return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
	})
}
