package env

import (
	"casino_settlement/internal/config"
	"os"
)

const (
	accessTokenKeyEnvName  = "ACCESS_TOKEN"
	serviceTokenKeyEnvName = "SERVICE_TOKEN"
)

type jwtConfig struct {
	accessTokenSecretKey  string
	serviceTokenSecretKey string
}

// NewJWTConfig без секрета игрок определяется по заголовку X-Player-ID.
// Без SERVICE_TOKEN внутренние маршруты закрыты.
func NewJWTConfig() (config.JWTConfig, error) {
	return &jwtConfig{
		accessTokenSecretKey:  os.Getenv(accessTokenKeyEnvName),
		serviceTokenSecretKey: os.Getenv(serviceTokenKeyEnvName),
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) ServiceTokenSecretKey() []byte {
	return []byte(j.serviceTokenSecretKey)
}

func (j *jwtConfig) Enabled() bool {
	return j.accessTokenSecretKey != ""
}
