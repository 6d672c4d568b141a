// Package hooks побочные эффекты после коммита расчёта: метрики,
// уведомления, достижения, наблюдаемый RTP. Ни один хук не может
// отменить уже проведённый расчёт.
package hooks

import (
	"casino_settlement/internal/logger"
	"casino_settlement/internal/metrics"
	"casino_settlement/internal/model"
	"casino_settlement/internal/service"
	"context"
)

// Hook именованный хук
type Hook interface {
	service.SettlementHook
	Name() string
}

// Dispatcher запускает хуки по очереди. Ошибки только логируются.
type Dispatcher struct {
	hooks []Hook
}

var _ service.SettlementHook = (*Dispatcher)(nil)

func NewDispatcher(hooks ...Hook) *Dispatcher {
	return &Dispatcher{hooks: hooks}
}

func (d *Dispatcher) AfterSettlement(ctx context.Context, event model.SettlementEvent) error {
	for _, h := range d.hooks {
		if err := h.AfterSettlement(ctx, event); err != nil {
			metrics.HookErrors.WithLabelValues(h.Name()).Inc()
			logger.FromContext(ctx).Warn("hook failed",
				"hook", h.Name(),
				"player_id", event.PlayerID,
				"game", event.Game.Slug,
				"error", err)
		}
	}
	return nil
}
