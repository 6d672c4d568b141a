package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	secret := []byte("secret")
	tok, err := GenerateAccessToken(42, secret, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, secret)
	require.NoError(t, err)

	id, err := PlayerID(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestVerifyToken_Rejects(t *testing.T) {
	secret := []byte("secret")

	tok, err := GenerateAccessToken(42, secret, time.Minute)
	require.NoError(t, err)
	_, err = VerifyToken(tok, []byte("other"))
	assert.Error(t, err)

	expired, err := GenerateAccessToken(42, secret, -time.Minute)
	require.NoError(t, err)
	_, err = VerifyToken(expired, secret)
	assert.Error(t, err)

	_, err = VerifyToken("not-a-token", secret)
	assert.Error(t, err)
}

func TestServiceToken(t *testing.T) {
	secret := []byte("payments-secret")

	tok, err := GenerateServiceToken("payments", secret, time.Minute)
	require.NoError(t, err)
	service, err := VerifyServiceToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "payments", service)

	_, err = VerifyServiceToken(tok, []byte("other"))
	assert.Error(t, err)

	// без настроенного секрета ничего не проходит
	_, err = VerifyServiceToken(tok, nil)
	assert.Error(t, err)

	expired, err := GenerateServiceToken("payments", secret, -time.Minute)
	require.NoError(t, err)
	_, err = VerifyServiceToken(expired, secret)
	assert.Error(t, err)

	// токен игрока не даёт доступа к внутренним маршрутам даже с тем же секретом
	player, err := GenerateAccessToken(42, secret, time.Minute)
	require.NoError(t, err)
	_, err = VerifyServiceToken(player, secret)
	assert.Error(t, err)
}
