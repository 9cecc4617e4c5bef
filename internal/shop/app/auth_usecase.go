// Package app реализует бизнес-логику магазина.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
	"goshop/internal/shop/ports/api"
	"goshop/internal/shop/ports/repositories"
	svc "goshop/internal/shop/ports/services"
	"goshop/pkg/logger"
)

const (
	methodRegister       = "Register"
	methodLogin          = "Login"
	methodRefreshTokens  = "RefreshTokens"
	methodLogout         = "Logout"
	methodGenerateTokens = "generateTokenPair"

	msgStartRegistration   = "starting user registration"
	msgRegistrationInvalid = "registration input failed validation"
	msgEmailExists         = "user with this email already exists"
	msgUserRegistered      = "user registered successfully"
	msgTokensGenerated     = "authentication tokens generated for new user"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgRefreshingTokens    = "refreshing tokens"
	msgBlacklistedToken    = "attempt to use blacklisted token"
	msgRevokedTokenAttempt = "attempt to use revoked token"
	msgExpiredTokenAttempt = "attempt to use expired token"
	msgOldTokenRevoked     = "old token revoked successfully"
	msgTokensRefreshed     = "tokens refreshed successfully"
	msgProcessingLogout    = "processing logout request"
	msgUserLoggedOut       = "user logged out successfully"
	msgTokenPairGenerated  = "token pair generated successfully"

	msgErrCheckExistingUser     = "failed to check existing user"
	msgErrHashPassword          = "failed to hash password"
	msgErrCreateUser            = "failed to create user"
	msgErrGenerateTokens        = "failed to generate tokens for new user"
	msgErrFindingUser           = "error finding user by email"
	msgErrVerifyingPassword     = "error verifying password"
	msgErrCheckingBlacklist     = "failed to check token blacklist"
	msgErrInvalidRefreshToken   = "invalid refresh token"
	msgErrFindingUserForToken   = "failed to find user for refresh token"
	msgErrRevokingOldToken      = "failed to revoke old token"
	msgErrGenerateRefreshTokens = "failed to generate new tokens during refresh"
	msgErrRevokingRefreshToken  = "failed to revoke refresh token"
	msgErrBlacklistingToken     = "failed to blacklist refresh token"
	msgErrGenerateAccessToken   = "failed to generate access token"
	msgErrGenerateRefreshToken  = "failed to generate refresh token"
	msgErrStoreRefreshToken     = "failed to store refresh token"

	errCtxValidatingInput        = "validating registration input"
	errCtxCheckingUser           = "checking existing user"
	errCtxHashingPassword        = "hashing password"
	errCtxCreatingUser           = "creating user"
	errCtxGeneratingTokens       = "generating tokens"
	errCtxInvalidCredentials     = "invalid credentials"
	errCtxFindingUser            = "finding user"
	errCtxVerifyingPassword      = "verifying password"
	errCtxCheckingBlacklist      = "checking token blacklist"
	errCtxFindingRefreshToken    = "finding refresh token"
	errCtxTokenRevoked           = "token revoked"
	errCtxTokenExpired           = "token expired"
	errCtxRevokingOldToken       = "revoking old token"
	errCtxGeneratingNewTokens    = "generating new tokens"
	errCtxRevokingToken          = "revoking token"
	errCtxBlacklistingToken      = "blacklisting token"
	errCtxGeneratingAccessToken  = "generating access token"
	errCtxGeneratingRefreshToken = "generating refresh token"
	errCtxStoringRefreshToken    = "storing refresh token"
)

// Сообщения валидации регистрации по полям.
const (
	fieldEmail                = "email"
	fieldPassword             = "password"
	fieldPasswordConfirmation = "password_confirmation"

	msgFieldEmailTaken = "email already registered"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	tokenRepo   repositories.TokenRepository
	blacklist   svc.TokenBlacklist
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	blacklist svc.TokenBlacklist,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		blacklist:   blacklist,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register создает нового пользователя с предоставленными учетными данными.
// Нарушения валидации собираются по всем полям сразу.
func (a *AuthUseCaseImpl) Register(ctx context.Context, email, password, passwordConfirmation string) (*entities.User, *services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	violations := validateCredentials(email, password, passwordConfirmation)

	if _, hasEmailError := violations[fieldEmail]; !hasEmailError {
		existingUser, err := a.userRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
			return nil, nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
		}
		if existingUser != nil {
			log.Debug(ctx, msgEmailExists)
			violations.Add(fieldEmail, msgFieldEmailTaken)
		}
	}

	if !violations.Empty() {
		log.Debug(ctx, msgRegistrationInvalid, zap.Int("violations", len(violations)))
		return nil, nil, fmt.Errorf("%s: %w", errCtxValidatingInput, violations)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))

	tokenPair, err := a.generateTokenPair(ctx, createdUser)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err), zap.String("userID", createdUser.ID))
		return nil, nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	log.Info(ctx, msgTokensGenerated, zap.String("userID", createdUser.ID))
	return createdUser, tokenPair, nil
}

// Login аутентифицирует пользователя по email и паролю.
// Неизвестный email и неверный пароль дают одинаковую ошибку.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*entities.User, *services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.String("userID", user.ID))
		return nil, nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))

	tokenPair, err := a.generateTokenPair(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err), zap.String("userID", user.ID))
		return nil, nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	return user, tokenPair, nil
}

// RefreshTokens обновляет пару токенов, отзывая предъявленный refresh-токен.
func (a *AuthUseCaseImpl) RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRefreshTokens))
	log.Debug(ctx, msgRefreshingTokens)

	blacklisted, err := a.blacklist.Contains(ctx, refreshToken)
	if err != nil {
		log.Error(ctx, msgErrCheckingBlacklist, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingBlacklist, err)
	}
	if blacklisted {
		log.Debug(ctx, msgBlacklistedToken)
		return nil, fmt.Errorf("%s: %w", errCtxTokenRevoked, services.ErrRevokedRefreshToken)
	}

	token, err := a.tokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		log.Debug(ctx, msgErrInvalidRefreshToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingRefreshToken, services.ErrInvalidRefreshToken)
	}

	log = log.With(zap.String("userID", token.UserID))

	if token.IsRevoked {
		log.Debug(ctx, msgRevokedTokenAttempt)
		return nil, fmt.Errorf("%s: %w", errCtxTokenRevoked, services.ErrRevokedRefreshToken)
	}

	if time.Now().After(token.ExpiresAt) {
		log.Debug(ctx, msgExpiredTokenAttempt)
		return nil, fmt.Errorf("%s: %w", errCtxTokenExpired, services.ErrInvalidRefreshToken)
	}

	user, err := a.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		log.Error(ctx, msgErrFindingUserForToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if err := a.revokeToken(ctx, token); err != nil {
		log.Error(ctx, msgErrRevokingOldToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxRevokingOldToken, err)
	}

	log.Debug(ctx, msgOldTokenRevoked)

	tokenPair, err := a.generateTokenPair(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrGenerateRefreshTokens, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingNewTokens, err)
	}

	log.Info(ctx, msgTokensRefreshed)
	return tokenPair, nil
}

// Logout отзывает refresh-токен: долговечно в Postgres и в черном списке Redis,
// чтобы отозванный токен не мог выпустить новый access-токен.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, refreshToken string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))
	log.Debug(ctx, msgProcessingLogout)

	token, err := a.tokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		log.Debug(ctx, msgErrInvalidRefreshToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxFindingRefreshToken, services.ErrInvalidRefreshToken)
	}

	log = log.With(zap.String("userID", token.UserID))

	if err := a.revokeToken(ctx, token); err != nil {
		log.Error(ctx, msgErrRevokingRefreshToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRevokingToken, err)
	}

	log.Info(ctx, msgUserLoggedOut)
	return nil
}

// revokeToken отзывает токен в хранилище и заносит его в черный список
// на остаток времени жизни.
func (a *AuthUseCaseImpl) revokeToken(ctx context.Context, token *services.RefreshToken) error {
	if err := a.tokenRepo.RevokeToken(ctx, token.Token); err != nil {
		return fmt.Errorf("%s: %w", errCtxRevokingToken, err)
	}

	remaining := time.Until(token.ExpiresAt)
	if remaining <= 0 {
		return nil
	}
	if err := a.blacklist.Add(ctx, token.Token, remaining); err != nil {
		logger.Log(ctx).Error(ctx, msgErrBlacklistingToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxBlacklistingToken, err)
	}
	return nil
}

// Вспомогательная функция для генерации пары токенов.
func (a *AuthUseCaseImpl) generateTokenPair(ctx context.Context, user *entities.User) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateTokens),
		zap.String("userID", user.ID),
	)

	accessToken, accessExpires, err := a.tokenSvc.GenerateAccessToken(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrGenerateAccessToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingAccessToken, services.ErrTokenGenerationFailed)
	}

	refreshToken, refreshExpires, err := a.tokenSvc.GenerateRefreshToken(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrGenerateRefreshToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingRefreshToken, services.ErrTokenGenerationFailed)
	}

	if err := a.tokenRepo.StoreRefreshToken(ctx, &services.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: refreshExpires,
		IsRevoked: false,
	}); err != nil {
		log.Error(ctx, msgErrStoreRefreshToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxStoringRefreshToken, err)
	}

	log.Debug(ctx, msgTokenPairGenerated)

	return &services.TokenPair{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExpires,
	}, nil
}

// validateCredentials собирает нарушения по полям регистрации.
func validateCredentials(email, password, passwordConfirmation string) entities.ValidationErrors {
	violations := entities.ValidationErrors{}

	if email == "" || !emailRegex.MatchString(email) {
		violations.Add(fieldEmail, entities.ErrInvalidEmail.Error())
	}

	if len(password) < services.MinPasswordLength {
		violations.Add(fieldPassword, entities.ErrPasswordTooShort.Error())
	}

	if password != passwordConfirmation {
		violations.Add(fieldPasswordConfirmation, entities.ErrPasswordMismatch.Error())
	}

	return violations
}
