package app

import (
	"casino_settlement/pkg/token"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
games:
  - {slug: coinflip, title: Coin Flip, type: COINFLIP, min_bet: "1", max_bet: "100", rtp: "98"}
  - {slug: fortune-wheel, type: WHEEL, min_bet: "1", max_bet: "100", rtp: "95"}
`

const testServiceSecret = "payments-secret"

func memoryProvider(t *testing.T) *ServiceProvider {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o600))

	t.Setenv("PG_DSN", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("ACCESS_TOKEN", "")
	t.Setenv("SERVICE_TOKEN", testServiceSecret)
	t.Setenv("GAME_CATALOG_PATH", path)
	t.Setenv("RNG_MODE", "hmac")
	t.Setenv("RNG_SERVER_SEED", "test-seed")

	sp := newServiceProvider()
	require.NoError(t, sp.SeedCatalog(context.Background()))
	return sp
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("X-Player-ID", "5")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, request)
	return w
}

func deposit(t *testing.T, r http.Handler, auth, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, "/internal/deposits", strings.NewReader(body))
	if auth != "" {
		request.Header.Set("Authorization", "Bearer "+auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, request)
	return w
}

func serviceToken(t *testing.T) string {
	t.Helper()
	tok, err := token.GenerateServiceToken("payments", []byte(testServiceSecret), time.Minute)
	require.NoError(t, err)
	return tok
}

func TestRouter_MemoryEndToEnd(t *testing.T) {
	sp := memoryProvider(t)
	r := sp.Router(context.Background())

	w := deposit(t, r, serviceToken(t), `{"player_id":5,"amount":"100","payment_id":"p-1"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodPost, "/games/coinflip/actions", `{"action":"coinflip_play","bet_amount":"10","choice":"heads"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		NewBalance string `json:"new_balance"`
		Payout     string `json:"payout"`
		RoundID    string `json:"round_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, []string{"90", "110"}, res.NewBalance)
	assert.NotEmpty(t, res.RoundID)

	w = do(r, http.MethodGet, "/players/me/transactions", "")
	require.Equal(t, http.StatusOK, w.Code)
	var txs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txs))
	if res.Payout == "0" {
		assert.Len(t, txs, 2)
	} else {
		assert.Len(t, txs, 3)
	}

	w = do(r, http.MethodGet, "/players/me/rounds", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), res.RoundID)

	w = do(r, http.MethodGet, "/games/coinflip/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_rounds":1`)

	w = do(r, http.MethodGet, "/games/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fortune-wheel")

	w = do(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "casino_settlements_total")
}

func TestRouter_DepositRequiresServiceToken(t *testing.T) {
	sp := memoryProvider(t)
	t.Setenv("ACCESS_TOKEN", "player-secret")
	r := sp.Router(context.Background())
	body := `{"player_id":42,"amount":"1000000","payment_id":"forged"}`

	request := httptest.NewRequest(http.MethodPost, "/internal/deposits", strings.NewReader(body))
	request.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, request)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// X-Player-ID и токен игрока не открывают внутренний маршрут
	w = do(r, http.MethodPost, "/internal/deposits", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	playerTok, err := token.GenerateAccessToken(42, []byte("player-secret"), time.Minute)
	require.NoError(t, err)
	w = deposit(t, r, playerTok, body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	txs, err := sp.LedgerService(context.Background()).Transactions(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, txs)

	w = deposit(t, r, serviceToken(t), body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestServiceProvider_MemoryBackends(t *testing.T) {
	sp := memoryProvider(t)
	ctx := context.Background()

	assert.Nil(t, sp.DBClient(ctx))
	assert.Nil(t, sp.RedisClient(ctx))
	assert.Same(t, sp.Store(), sp.TXManager(ctx))

	g, err := sp.CatalogService(ctx).Get(ctx, "fortune-wheel")
	require.NoError(t, err)
	assert.Equal(t, "fortune-wheel", g.Title)
}
