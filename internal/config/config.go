package config

import (
	"casino_settlement/internal/model"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	// Enabled false - работаем на хранилище в памяти
	Enabled() bool
}

type RedisConfig interface {
	Address() string
	Password() string
	DB() int
	Enabled() bool
}

type LoggerConfig interface {
	Level() string
	Format() string
	Environment() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	// ServiceTokenSecretKey секрет токенов внешних сервисов (платёжный шлюз)
	ServiceTokenSecretKey() []byte
	Enabled() bool
}

type SettlementConfig interface {
	Currency() string
	RecordPolicy() model.RecordPolicy
	RNGMode() string
	ServerSeed() string
	GameCacheTTL() time.Duration
	GameCacheSize() int
}

type CatalogConfig interface {
	Games() []model.GameConfig
}
