package health

import (
	"casino_settlement/pkg/resp"
	"context"
	"net/http"
	"time"
)

// Pinger зависимость, доступность которой проверяет /health
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	deps map[string]Pinger
}

// NewHandler nil-зависимости пропускаются
func NewHandler(deps map[string]Pinger) *Handler {
	clean := make(map[string]Pinger, len(deps))
	for name, p := range deps {
		if p != nil {
			clean[name] = p
		}
	}
	return &Handler{deps: clean}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(h.deps))
	for name, p := range h.deps {
		if err := p.Ping(ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	state := "ok"
	if status != http.StatusOK {
		state = "unavailable"
	}
	resp.WriteJSONResponse(w, status, map[string]any{
		"status": state,
		"checks": checks,
	})
}

// PingFunc адаптер для клиентов, у которых Ping не возвращает error
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}
