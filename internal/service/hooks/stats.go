package hooks

import (
	"casino_settlement/internal/metrics"
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository/stats_repo"
	statsModel "casino_settlement/internal/repository/stats_repo/model"
	"casino_settlement/internal/service"
	"context"
)

// StatsHook наблюдаемый RTP по играм. На исходы не влияет.
type StatsHook struct {
	repo *stats_repo.StatsRepo
}

var _ service.StatsService = (*StatsHook)(nil)

func NewStatsHook(repo *stats_repo.StatsRepo) *StatsHook {
	return &StatsHook{repo: repo}
}

func (*StatsHook) Name() string { return "stats" }

func (h *StatsHook) AfterSettlement(_ context.Context, event model.SettlementEvent) error {
	round := event.Round
	if round == nil {
		return nil
	}

	bet, _ := round.Bet.Float64()
	paid, _ := round.Payout.Add(round.Bonus).Float64()
	st := h.repo.Record(event.Game.Slug, event.Game.RTPFraction()*100, bet, paid)

	metrics.ObservedRTP.WithLabelValues(event.Game.Slug).Set(st.WindowRTP)
	return nil
}

func (h *StatsHook) GameStats(slug string) (statsModel.GameStats, bool) {
	return h.repo.Stats(slug)
}
