// Package auth содержит HTTP обработчики аутентификации.
package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goshop/internal/shop/adapters/http/dto"
	"goshop/internal/shop/adapters/http/httperr"
	"goshop/internal/shop/ports/api"
	"goshop/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister      = "auth handler: register"
	LogHandlerLogin         = "auth handler: login"
	LogHandlerRefreshTokens = "auth handler: refresh tokens" // #nosec G101 - not a credential
	LogHandlerLogout        = "auth handler: logout"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики для аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{authUseCase: authUseCase}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	user, tokens, err := h.authUseCase.Register(requestCtx, req.Email, req.Password, req.PasswordConfirmation)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusCreated).JSON(dto.NewAuthResponse(user, tokens))
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	user, tokens, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(dto.NewAuthResponse(user, tokens))
}

// RefreshTokens обрабатывает запрос на обновление токенов.
func (h *Handler) RefreshTokens(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRefreshTokens)

	var req dto.RefreshRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.RefreshToken == "" {
		return httperr.BadRequest(ctx, "refresh token is required")
	}

	tokens, err := h.authUseCase.RefreshTokens(requestCtx, req.RefreshToken)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(dto.NewTokenResponse(tokens))
}

// Logout обрабатывает запрос на выход пользователя.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	var req dto.LogoutRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return httperr.BadRequest(ctx, ErrorInvalidRequest)
	}

	if req.RefreshToken == "" {
		return httperr.BadRequest(ctx, "refresh token is required")
	}

	if err := h.authUseCase.Logout(requestCtx, req.RefreshToken); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	return ctx.SendStatus(http.StatusResetContent)
}
