package req

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"min=0,max=3"`
}

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestDecode(t *testing.T) {
	p, err := Decode[payload](body(`{"name":"mines","count":2}`))
	require.NoError(t, err)
	assert.Equal(t, payload{Name: "mines", Count: 2}, p)

	_, err = Decode[payload](body(`{"count":2}`))
	assert.Error(t, err)

	_, err = Decode[payload](body(`{"name":"x","count":9}`))
	assert.Error(t, err)

	_, err = Decode[payload](body(`not json`))
	assert.Error(t, err)
}
