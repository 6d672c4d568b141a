package env

import (
	"casino_settlement/internal/config"
	"fmt"
	"os"
	"strconv"
)

const (
	redisAddrEnvName     = "REDIS_ADDR"
	redisPasswordEnvName = "REDIS_PASSWORD"
	redisDBEnvName       = "REDIS_DB"
)

type redisConfig struct {
	addr     string
	password string
	db       int
}

// NewRedisConfig без REDIS_ADDR realtime-уведомления выключены
func NewRedisConfig() (config.RedisConfig, error) {
	db := 0
	if raw := os.Getenv(redisDBEnvName); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid redis db: %w", err)
		}
		db = parsed
	}

	return &redisConfig{
		addr:     os.Getenv(redisAddrEnvName),
		password: os.Getenv(redisPasswordEnvName),
		db:       db,
	}, nil
}

func (cfg *redisConfig) Address() string  { return cfg.addr }
func (cfg *redisConfig) Password() string { return cfg.password }
func (cfg *redisConfig) DB() int          { return cfg.db }
func (cfg *redisConfig) Enabled() bool    { return cfg.addr != "" }
