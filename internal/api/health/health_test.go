package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	ok := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("all up", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewHandler(map[string]Pinger{"postgres": ok, "redis": nil}).Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		assert.NotContains(t, w.Body.String(), "redis")
	})

	t.Run("dependency down", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewHandler(map[string]Pinger{"postgres": ok, "redis": down}).Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}
