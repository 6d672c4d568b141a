package resp

import (
	"casino_settlement/internal/model"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_StatusByKind(t *testing.T) {
	tests := []struct {
		err    error
		status int
		kind   string
	}{
		{model.NewError(model.KindValidation, "bad bet"), http.StatusBadRequest, "validation"},
		{model.NewError(model.KindInsufficientFunds, "short"), http.StatusBadRequest, "insufficient_funds"},
		{model.ErrNotFound, http.StatusNotFound, "not_found"},
		{model.NewError(model.KindConflict, "open session"), http.StatusConflict, "conflict"},
		{model.WrapError(model.KindUpstreamUnavailable, "ledger", errors.New("conn reset")), http.StatusServiceUnavailable, "upstream_unavailable"},
		{errors.New("nil pointer somewhere"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		WriteError(w, tt.err)
		assert.Equal(t, tt.status, w.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tt.kind, body.Kind)
	}
}

func TestWriteError_HidesInternalMessage(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("dsn=postgres://secret"))
	assert.NotContains(t, w.Body.String(), "secret")
}
