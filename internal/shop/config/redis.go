package config

import (
	"time"

	"goshop/pkg/db/redis"
)

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host     string        `yaml:"host" env:"SHOP_REDIS_HOST" env-default:"localhost"`
	Port     int           `yaml:"port" env:"SHOP_REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"SHOP_REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"SHOP_REDIS_DB" env-default:"0"`
	PoolSize int           `yaml:"pool_size" env:"SHOP_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout" env:"SHOP_REDIS_TIMEOUT" env-default:"5s"`
}

// GetClientConfig возвращает настройки для клиента Redis.
func (c *RedisConfig) GetClientConfig() *redis.Config {
	return &redis.Config{
		Host:     c.Host,
		Port:     c.Port,
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
		Timeout:  c.Timeout,
	}
}
