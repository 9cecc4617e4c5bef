package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"goshop/internal/shop/domain/services"
	svc "goshop/internal/shop/ports/services"
	"goshop/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodGenerateAccessToken  = "GenerateAccessToken"
	methodGenerateRefreshToken = "GenerateRefreshToken"
	methodValidateAccessToken  = "ValidateAccessToken"
	msgGeneratingAccessToken   = "generating access token"
	msgGeneratingRefreshToken  = "generating refresh token"
	msgValidatingToken         = "validating token"
	msgTokenGenerated          = "token generated successfully"
	msgTokenValidated          = "token validated successfully"
	msgInvalidToken            = "invalid token format"
	msgTokenExpired            = "token has expired"
	//nolint:gosec
	errSigningToken = "error signing token"
	//nolint:gosec
	errParsingToken       = "error parsing token"
	errCtxGeneratingToken = "generating token"
	errCtxParsingToken    = "parsing token"
	errCtxValidatingToken = "validating token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims используется для адаптации между доменной моделью и библиотекой JWT.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService.
type ServiceJWT struct {
	config services.JWTConfig
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(secretKey string, accessTokenTTL, refreshTokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: services.JWTConfig{
			SecretKey:       []byte(secretKey),
			AccessTokenTTL:  accessTokenTTL,
			RefreshTokenTTL: refreshTokenTTL,
		},
	}
}

// domainToJWTClaims преобразует доменные claims в формат библиотеки JWT.
func domainToJWTClaims(claims services.JWTClaims) Claims {
	return Claims{
		UserID: claims.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			Subject:   claims.UserID,
		},
	}
}

// jwtToDomainClaims преобразует claims формата библиотеки JWT в доменные claims.
func jwtToDomainClaims(claims Claims) services.JWTClaims {
	var expiresAt, issuedAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}

	return services.JWTClaims{
		UserID:    claims.UserID,
		ExpiresAt: expiresAt,
		IssuedAt:  issuedAt,
	}
}

// generateToken подписывает токен с заданным сроком жизни.
func (s *ServiceJWT) generateToken(userID string, ttl time.Duration) (string, time.Time, error) {
	if len(s.config.SecretKey) == 0 {
		return "", time.Time{}, fmt.Errorf("%s: %w: empty secret key", errCtxGeneratingToken, services.ErrGeneratingJWTToken)
	}

	now := time.Now()
	expiresAt := now.Add(ttl)

	domainClaims := services.JWTClaims{
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, domainToJWTClaims(domainClaims))

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrGeneratingJWTToken, err)
	}

	return tokenString, expiresAt, nil
}

// GenerateAccessToken генерирует JWT токен доступа.
func (s *ServiceJWT) GenerateAccessToken(ctx context.Context, userID string) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateAccessToken),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgGeneratingAccessToken)

	tokenString, expiresAt, err := s.generateToken(userID, s.config.AccessTokenTTL)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, err
	}

	log.Debug(ctx, msgTokenGenerated, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// GenerateRefreshToken генерирует refresh токен.
func (s *ServiceJWT) GenerateRefreshToken(ctx context.Context, userID string) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateRefreshToken),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgGeneratingRefreshToken)

	tokenString, expiresAt, err := s.generateToken(userID, s.config.RefreshTokenTTL)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, err
	}

	log.Debug(ctx, msgTokenGenerated, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// ValidateAccessToken проверяет JWT токен и возвращает ID пользователя.
func (s *ServiceJWT) ValidateAccessToken(ctx context.Context, tokenString string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodValidateAccessToken))
	log.Debug(ctx, msgValidatingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	})

	if err != nil {
		if strings.Contains(err.Error(), "token is expired") {
			log.Debug(ctx, msgTokenExpired)
			return "", fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrExpiredJWTToken)
		}
		log.Error(ctx, errParsingToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxParsingToken, services.ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return "", fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrInvalidJWTToken)
	}

	if claims.UserID == "" {
		log.Debug(ctx, "user_id claim is empty")
		return "", fmt.Errorf("%s: %w: empty user_id", errCtxValidatingToken, services.ErrInvalidJWTToken)
	}

	log.Debug(ctx, msgTokenValidated, zap.String("userID", claims.UserID))
	return claims.UserID, nil
}
