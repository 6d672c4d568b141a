package rng

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync"
)

// HMAC доказуемо честный поток: значение n = HMAC-SHA256(serverSeed, "clientSeed:n").
// По опубликованному после раунда серверному сиду игрок повторит каждое значение.
type HMAC struct {
	mu         sync.Mutex
	serverSeed string
	clientSeed string
	cursor     int
}

func NewHMAC(serverSeed, clientSeed string) *HMAC {
	return &HMAC{serverSeed: serverSeed, clientSeed: clientSeed}
}

func (h *HMAC) next() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	mac := hmac.New(sha256.New, []byte(h.serverSeed))
	fmt.Fprintf(mac, "%s:%d", h.clientSeed, h.cursor)
	h.cursor++
	return binary.BigEndian.Uint64(mac.Sum(nil)[:8])
}

// Uniform старшие 53 бита, каждое значение точно представимо во float64
func (h *HMAC) Uniform() float64 {
	return float64(h.next()>>11) / (1 << 53)
}

// UniformInt без смещения по модулю: значения ниже 2^64 mod n отбрасываются
// и берётся следующее. Каждый отброс сдвигает курсор.
func (h *HMAC) UniformInt(lo, hi int) int {
	n := uint64(hi - lo + 1)
	threshold := -n % n
	v := h.next()
	for v < threshold {
		v = h.next()
	}
	return lo + int(v%n)
}

// Draws сколько значений уже взято
func (h *HMAC) Draws() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor
}

// GenerateSeed случайный серверный сид в hex
func GenerateSeed() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Commitment sha256 сида
func Commitment(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}
