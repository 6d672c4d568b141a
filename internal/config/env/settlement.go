package env

import (
	"casino_settlement/internal/config"
	"casino_settlement/internal/model"
	"fmt"
	"strconv"
	"time"
)

const (
	currencyEnvName      = "SETTLEMENT_CURRENCY"
	recordPolicyEnvName  = "SETTLEMENT_RECORD_POLICY"
	rngModeEnvName       = "RNG_MODE"
	rngServerSeedEnvName = "RNG_SERVER_SEED"
	gameCacheTTLEnvName  = "GAME_CACHE_TTL"
	gameCacheSizeEnvName = "GAME_CACHE_SIZE"

	RNGModeMath = "math"
	RNGModeHMAC = "hmac"
)

type settlementConfig struct {
	currency      string
	recordPolicy  model.RecordPolicy
	rngMode       string
	serverSeed    string
	gameCacheTTL  time.Duration
	gameCacheSize int
}

func NewSettlementConfig() (config.SettlementConfig, error) {
	policy := model.RecordPolicy(getenv(recordPolicyEnvName, string(model.RecordStrict)))
	if !policy.Valid() {
		return nil, fmt.Errorf("unknown record policy %q", policy)
	}

	mode := getenv(rngModeEnvName, RNGModeMath)
	if mode != RNGModeMath && mode != RNGModeHMAC {
		return nil, fmt.Errorf("unknown rng mode %q", mode)
	}

	ttl, err := time.ParseDuration(getenv(gameCacheTTLEnvName, "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid game cache ttl: %w", err)
	}

	size, err := strconv.Atoi(getenv(gameCacheSizeEnvName, "128"))
	if err != nil || size <= 0 {
		return nil, fmt.Errorf("invalid game cache size %q", getenv(gameCacheSizeEnvName, ""))
	}

	return &settlementConfig{
		currency:      getenv(currencyEnvName, model.DefaultCurrency),
		recordPolicy:  policy,
		rngMode:       mode,
		serverSeed:    getenv(rngServerSeedEnvName, ""),
		gameCacheTTL:  ttl,
		gameCacheSize: size,
	}, nil
}

func (cfg *settlementConfig) Currency() string                 { return cfg.currency }
func (cfg *settlementConfig) RecordPolicy() model.RecordPolicy { return cfg.recordPolicy }
func (cfg *settlementConfig) RNGMode() string                  { return cfg.rngMode }
func (cfg *settlementConfig) ServerSeed() string               { return cfg.serverSeed }
func (cfg *settlementConfig) GameCacheTTL() time.Duration      { return cfg.gameCacheTTL }
func (cfg *settlementConfig) GameCacheSize() int               { return cfg.gameCacheSize }
