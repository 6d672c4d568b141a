package env

import (
	"casino_settlement/internal/config"
	"os"
)

const (
	dsnName = "PG_DSN"
)

type pgConfig struct {
	dsn string
}

// NewPGConfig пустой PG_DSN означает работу без Postgres
func NewPGConfig() (config.PGConfig, error) {
	return &pgConfig{
		dsn: os.Getenv(dsnName),
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

func (cfg *pgConfig) Enabled() bool {
	return cfg.dsn != ""
}
