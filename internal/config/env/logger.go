package env

import (
	"casino_settlement/internal/config"
	"fmt"
	"os"
	"strings"
)

const (
	logLevelEnvName  = "LOG_LEVEL"
	logFormatEnvName = "LOG_FORMAT"
	appEnvEnvName    = "APP_ENV"
)

type loggerConfig struct {
	level       string
	format      string
	environment string
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	level := strings.ToLower(getenv(logLevelEnvName, "info"))
	switch level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	format := strings.ToLower(getenv(logFormatEnvName, "text"))
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return &loggerConfig{
		level:       level,
		format:      format,
		environment: getenv(appEnvEnvName, "dev"),
	}, nil
}

func (cfg *loggerConfig) Level() string       { return cfg.level }
func (cfg *loggerConfig) Format() string      { return cfg.format }
func (cfg *loggerConfig) Environment() string { return cfg.environment }

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
