// Package users содержит HTTP обработчики профиля пользователя.
package users

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goshop/internal/shop/adapters/http/dto"
	"goshop/internal/shop/adapters/http/httperr"
	"goshop/internal/shop/adapters/http/middleware"
	"goshop/internal/shop/ports/api"
	"goshop/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerGetProfile    = "user handler: get profile"
	LogHandlerUpdateProfile = "user handler: update profile"
	LogHandlerDeleteAccount = "user handler: delete account"

	ErrorInvalidRequest       = "invalid request"
	ErrorUnauthorized         = "unauthorized"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики профиля.
type Handler struct {
	userUseCase api.UserUseCase
}

// NewHandler создает новый экземпляр обработчика профиля.
func NewHandler(userUseCase api.UserUseCase) *Handler {
	return &Handler{userUseCase: userUseCase}
}

// GetProfile обрабатывает запрос на получение профиля.
func (h *Handler) GetProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetProfile)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return httperr.Unauthorized(ctx, ErrorUnauthorized)
	}

	user, err := h.userUseCase.GetProfile(requestCtx, userID)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(dto.NewUserResponse(user))
}

// UpdateProfile обрабатывает запрос на изменение профиля.
func (h *Handler) UpdateProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateProfile)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return httperr.Unauthorized(ctx, ErrorUnauthorized)
	}

	var req dto.UpdateProfileRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	user, err := h.userUseCase.UpdateProfile(requestCtx, userID, api.ProfileUpdate{
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(dto.NewUserResponse(user))
}

// DeleteAccount обрабатывает запрос на удаление учетной записи.
func (h *Handler) DeleteAccount(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeleteAccount)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return httperr.Unauthorized(ctx, ErrorUnauthorized)
	}

	if err := h.userUseCase.DeleteAccount(requestCtx, userID); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.SendStatus(http.StatusNoContent)
}
