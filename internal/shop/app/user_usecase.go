package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"goshop/internal/shop/domain/entities"
	"goshop/internal/shop/domain/services"
	"goshop/internal/shop/ports/api"
	"goshop/internal/shop/ports/repositories"
	svc "goshop/internal/shop/ports/services"
	"goshop/pkg/logger"
)

const (
	methodGetProfile    = "GetProfile"
	methodUpdateProfile = "UpdateProfile"
	methodDeleteAccount = "DeleteAccount"

	msgRequestingProfile   = "requesting user profile"
	msgEmptyUserIDProvided = "empty user ID provided"
	msgProfileRetrieved    = "user profile successfully retrieved"
	msgUpdatingProfile     = "updating user profile"
	msgProfileInvalid      = "profile update failed validation"
	msgProfileUpdated      = "user profile updated"
	msgDeletingAccount     = "deleting user account"
	msgAccountDeleted      = "user account deleted, orders cascaded"

	msgErrFindingUserByID  = "failed to find user by ID"
	msgErrCheckingEmail    = "failed to check email uniqueness"
	msgErrUpdatingUser     = "failed to update user"
	msgErrRevokingTokens   = "failed to revoke user tokens"
	msgErrDeletingUser     = "failed to delete user"
	msgErrHashNewPassword  = "failed to hash new password"
	msgEmailTakenByAnother = "email already registered by another user"

	errCtxValidatingUserID = "validating user ID"
	errCtxFetchingProfile  = "fetching user profile"
	errCtxValidatingUpdate = "validating profile update"
	errCtxCheckingEmail    = "checking email uniqueness"
	errCtxUpdatingProfile  = "updating profile"
	errCtxHashingNew       = "hashing new password"
	errCtxRevokingTokens   = "revoking user tokens"
	errCtxDeletingAccount  = "deleting account"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo    repositories.UserRepository
	tokenRepo   repositories.TokenRepository
	passwordSvc svc.PasswordService
}

// NewUserUseCase создает новый экземпляр сервиса пользователя.
func NewUserUseCase(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	passwordSvc svc.PasswordService,
) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		passwordSvc: passwordSvc,
	}
}

// GetProfile получает профиль пользователя по ID.
func (u *UserUseCaseImpl) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetProfile), zap.String("userID", userID))
	log.Debug(ctx, msgRequestingProfile)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUserID, entities.ErrEmptyUserID)
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}

	log.Info(ctx, msgProfileRetrieved)
	return user, nil
}

// UpdateProfile изменяет email и/или пароль пользователя.
// Уникальность email проверяется с исключением самого пользователя,
// новый пароль повторно хэшируется.
func (u *UserUseCaseImpl) UpdateProfile(ctx context.Context, userID string, update api.ProfileUpdate) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateProfile), zap.String("userID", userID))
	log.Debug(ctx, msgUpdatingProfile)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUserID, entities.ErrEmptyUserID)
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}

	violations := entities.ValidationErrors{}

	if update.Email != "" && update.Email != user.Email {
		if !emailRegex.MatchString(update.Email) {
			violations.Add(fieldEmail, entities.ErrInvalidEmail.Error())
		} else {
			existing, err := u.userRepo.FindByEmail(ctx, update.Email)
			if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
				log.Error(ctx, msgErrCheckingEmail, zap.Error(err))
				return nil, fmt.Errorf("%s: %w", errCtxCheckingEmail, err)
			}
			if existing != nil && existing.ID != userID {
				log.Debug(ctx, msgEmailTakenByAnother)
				violations.Add(fieldEmail, msgFieldEmailTaken)
			} else {
				user.Email = update.Email
			}
		}
	}

	if update.Password != "" {
		if len(update.Password) < services.MinPasswordLength {
			violations.Add(fieldPassword, entities.ErrPasswordTooShort.Error())
		}
		if update.Password != update.PasswordConfirmation {
			violations.Add(fieldPasswordConfirmation, entities.ErrPasswordMismatch.Error())
		}
	}

	if !violations.Empty() {
		log.Debug(ctx, msgProfileInvalid, zap.Int("violations", len(violations)))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUpdate, violations)
	}

	if update.Password != "" {
		hashed, err := u.passwordSvc.Hash(ctx, update.Password)
		if err != nil {
			log.Error(ctx, msgErrHashNewPassword, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxHashingNew, err)
		}
		user.PasswordHash = hashed
	}

	updated, err := u.userRepo.Update(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrUpdatingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingProfile, err)
	}

	log.Info(ctx, msgProfileUpdated)
	return updated, nil
}

// DeleteAccount удаляет учетную запись. Заказы удаляются каскадно
// на уровне внешних ключей, refresh-токены отзываются до удаления.
func (u *UserUseCaseImpl) DeleteAccount(ctx context.Context, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteAccount), zap.String("userID", userID))
	log.Debug(ctx, msgDeletingAccount)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return fmt.Errorf("%s: %w", errCtxValidatingUserID, entities.ErrEmptyUserID)
	}

	if err := u.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		log.Error(ctx, msgErrRevokingTokens, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRevokingTokens, err)
	}

	if err := u.userRepo.Delete(ctx, userID); err != nil {
		log.Error(ctx, msgErrDeletingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingAccount, err)
	}

	log.Info(ctx, msgAccountDeleted)
	return nil
}
