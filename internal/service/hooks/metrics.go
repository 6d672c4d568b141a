package hooks

import (
	"casino_settlement/internal/metrics"
	"casino_settlement/internal/model"
	"context"
)

// MetricsHook счётчики расчётов в prometheus
type MetricsHook struct{}

func NewMetricsHook() *MetricsHook {
	return &MetricsHook{}
}

func (*MetricsHook) Name() string { return "metrics" }

func (*MetricsHook) AfterSettlement(_ context.Context, event model.SettlementEvent) error {
	res := event.Result
	slug := event.Game.Slug

	metrics.SettlementsTotal.WithLabelValues(slug, string(res.Action), string(res.Tag)).Inc()
	if res.Degraded {
		metrics.DegradedSettlements.WithLabelValues(slug).Inc()
	}

	// ставки считаем там, где они списаны
	if res.Action.TakesBet() {
		bet, _ := res.Bet.Float64()
		metrics.Wagered.WithLabelValues(slug).Add(bet)
	}
	if paid, _ := res.Payout.Add(res.Bonus).Float64(); paid > 0 {
		metrics.PaidOut.WithLabelValues(slug).Add(paid)
	}
	return nil
}
