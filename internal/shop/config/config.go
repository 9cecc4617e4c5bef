// Package config содержит конфигурацию сервиса магазина.
package config

import (
	"context"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"goshop/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	LogLoadingConfig    = "Loading shop service configuration"
	LogConfigLoaded     = "Configuration loaded successfully"
	ErrFailedLoadConfig = "Failed to load configuration"
)

// Config представляет полную конфигурацию приложения.
type Config struct {
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	HTTP     HTTPConfig     `yaml:"http"`
	JWT      JWTConfig      `yaml:"jwt"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load загружает конфигурацию из переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogLoadingConfig)

	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	log.Info(ctx, LogConfigLoaded,
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("redis_host", cfg.Redis.Host),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return &cfg, nil
}
