package env

import (
	"casino_settlement/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
games:
  - slug: neon-slots
    title: Neon Slots
    type: SLOT
    min_bet: "1"
    max_bet: "500"
    rtp: "96.5"
  - slug: classic-roulette
    type: ROULETTE
    min_bet: "5"
    max_bet: "1000"
    rtp: "97"
    active: false
    spin_closes_session: false
`

func TestParseCatalog(t *testing.T) {
	cfg, err := ParseCatalog([]byte(catalogYAML))
	require.NoError(t, err)

	games := cfg.Games()
	require.Len(t, games, 2)

	assert.Equal(t, "neon-slots", games[0].Slug)
	assert.Equal(t, model.GameSlot, games[0].Type)
	assert.True(t, games[0].Active)
	assert.True(t, games[0].SpinClosesSession)
	assert.Equal(t, "96.5", games[0].RTP.String())

	assert.Equal(t, "classic-roulette", games[1].Title)
	assert.False(t, games[1].Active)
	assert.False(t, games[1].SpinClosesSession)
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown type": `
games:
  - {slug: x, type: POKER, min_bet: "1", max_bet: "2", rtp: "90"}`,
		"min above max": `
games:
  - {slug: x, type: SLOT, min_bet: "10", max_bet: "2", rtp: "90"}`,
		"rtp above 100": `
games:
  - {slug: x, type: SLOT, min_bet: "1", max_bet: "2", rtp: "120"}`,
		"not a number": `
games:
  - {slug: x, type: SLOT, min_bet: "one", max_bet: "2", rtp: "90"}`,
		"duplicate slug": `
games:
  - {slug: x, type: SLOT, min_bet: "1", max_bet: "2", rtp: "90"}
  - {slug: x, type: WHEEL, min_bet: "1", max_bet: "2", rtp: "90"}`,
		"empty": `games: []`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestNewSettlementConfig(t *testing.T) {
	t.Setenv(recordPolicyEnvName, "")
	t.Setenv(rngModeEnvName, "")

	cfg, err := NewSettlementConfig()
	require.NoError(t, err)
	assert.Equal(t, model.RecordStrict, cfg.RecordPolicy())
	assert.Equal(t, RNGModeMath, cfg.RNGMode())
	assert.Equal(t, model.DefaultCurrency, cfg.Currency())
	assert.Equal(t, 128, cfg.GameCacheSize())

	t.Setenv(recordPolicyEnvName, "sometimes")
	_, err = NewSettlementConfig()
	assert.Error(t, err)
}

func TestOptionalBackends(t *testing.T) {
	t.Setenv(dsnName, "")
	t.Setenv(redisAddrEnvName, "")
	t.Setenv(accessTokenKeyEnvName, "")
	t.Setenv(serviceTokenKeyEnvName, "")

	pg, err := NewPGConfig()
	require.NoError(t, err)
	assert.False(t, pg.Enabled())

	rd, err := NewRedisConfig()
	require.NoError(t, err)
	assert.False(t, rd.Enabled())

	jwt, err := NewJWTConfig()
	require.NoError(t, err)
	assert.False(t, jwt.Enabled())
	assert.Empty(t, jwt.ServiceTokenSecretKey())

	t.Setenv(serviceTokenKeyEnvName, "payments-secret")
	jwt, err = NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, []byte("payments-secret"), jwt.ServiceTokenSecretKey())
	assert.False(t, jwt.Enabled())

	t.Setenv(redisDBEnvName, "x")
	_, err = NewRedisConfig()
	assert.Error(t, err)
}
