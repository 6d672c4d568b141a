package middleware

import (
	"casino_settlement/internal/logger"
	"casino_settlement/pkg/token"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoPlayer(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := PlayerIDFromContext(r.Context())
		require.True(t, ok)
		w.Header().Set("X-Seen-Player", strconv.FormatInt(id, 10))
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestPlayer_Header(t *testing.T) {
	h := Player(nil)(echoPlayer(t))

	r := httptest.NewRequest(http.MethodGet, "/players/me/balance", nil)
	r.Header.Set(PlayerIDHeader, "7")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "7", w.Header().Get("X-Seen-Player"))

	for _, bad := range []string{"", "abc", "-1", "0"} {
		r := httptest.NewRequest(http.MethodGet, "/players/me/balance", nil)
		r.Header.Set(PlayerIDHeader, bad)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", bad)
	}
}

func TestPlayer_JWT(t *testing.T) {
	secret := []byte("access-secret")
	h := Player(secret)(echoPlayer(t))

	tok, err := token.GenerateAccessToken(42, secret, time.Minute)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "42", w.Header().Get("X-Seen-Player"))

	// при включённом JWT заголовок не принимается
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(PlayerIDHeader, "42")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	forged, err := token.GenerateAccessToken(42, []byte("other"), time.Minute)
	require.NoError(t, err)
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+forged)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = logger.RequestIDFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "req-1", seen)
}

func TestService(t *testing.T) {
	secret := []byte("payments-secret")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		service, ok := ServiceFromContext(r.Context())
		require.True(t, ok)
		w.Header().Set("X-Seen-Service", service)
		w.WriteHeader(http.StatusCreated)
	})

	valid, err := token.GenerateServiceToken("payments", secret, time.Minute)
	require.NoError(t, err)
	forged, err := token.GenerateServiceToken("payments", []byte("other"), time.Minute)
	require.NoError(t, err)
	player, err := token.GenerateAccessToken(42, secret, time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret []byte
		auth   string
		player string
		status int
	}{
		{name: "valid", secret: secret, auth: "Bearer " + valid, status: http.StatusCreated},
		{name: "no token", secret: secret, status: http.StatusUnauthorized},
		{name: "player header only", secret: secret, player: "42", status: http.StatusUnauthorized},
		{name: "wrong secret", secret: secret, auth: "Bearer " + forged, status: http.StatusUnauthorized},
		{name: "player token", secret: secret, auth: "Bearer " + player, status: http.StatusUnauthorized},
		{name: "not configured", secret: nil, auth: "Bearer " + valid, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Service(tt.secret)(next)
			r := httptest.NewRequest(http.MethodPost, "/internal/deposits", nil)
			if tt.auth != "" {
				r.Header.Set("Authorization", tt.auth)
			}
			if tt.player != "" {
				r.Header.Set(PlayerIDHeader, tt.player)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusCreated {
				assert.Equal(t, "payments", w.Header().Get("X-Seen-Service"))
			} else {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
