package stats_repo

import (
	repoModel "casino_settlement/internal/repository/stats_repo/model"
	"sort"
	"sync"
)

// DefaultWindowSize сколько последних раундов учитывается в оконном RTP
const DefaultWindowSize = 500

type gameState struct {
	stats  repoModel.GameStats
	window []repoModel.RoundResult
}

// StatsRepo хранит наблюдаемый RTP по играм в памяти процесса.
// Только наблюдение: на вероятности исходов не влияет.
type StatsRepo struct {
	mtx        sync.RWMutex
	windowSize int
	games      map[string]*gameState
}

// NewStatsRepository Конструктор. windowSize <= 0 заменяется на DefaultWindowSize
func NewStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &StatsRepo{
		windowSize: windowSize,
		games:      make(map[string]*gameState),
	}
}

// Record Обновление статистики игры после раунда
func (r *StatsRepo) Record(gameSlug string, targetRTP, bet, payout float64) repoModel.GameStats {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	g, ok := r.games[gameSlug]
	if !ok {
		g = &gameState{
			stats: repoModel.GameStats{
				GameSlug:   gameSlug,
				WindowSize: r.windowSize,
			},
			window: make([]repoModel.RoundResult, 0, r.windowSize),
		}
		r.games[gameSlug] = g
	}

	g.stats.TargetRTP = targetRTP
	g.stats.TotalRounds++
	g.stats.TotalBet += bet
	g.stats.TotalPayout += payout
	if g.stats.TotalBet > 0 {
		g.stats.CurrentRTP = g.stats.TotalPayout / g.stats.TotalBet * 100
	}

	// Добавляем раунд в окно и поддерживаем его размер
	g.window = append(g.window, repoModel.RoundResult{Bet: bet, Payout: payout})
	if len(g.window) > r.windowSize {
		g.window = g.window[1:]
	}

	var windowBet, windowPayout float64
	for _, round := range g.window {
		windowBet += round.Bet
		windowPayout += round.Payout
	}
	if windowBet > 0 {
		g.stats.WindowRTP = windowPayout / windowBet * 100
	} else {
		g.stats.WindowRTP = 0
	}
	g.stats.WindowCount = len(g.window)

	return g.stats
}

// Stats Копия статистики игры
func (r *StatsRepo) Stats(gameSlug string) (repoModel.GameStats, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	g, ok := r.games[gameSlug]
	if !ok {
		return repoModel.GameStats{}, false
	}
	return g.stats, true
}

// All Статистика всех игр, отсортированная по slug
func (r *StatsRepo) All() []repoModel.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	result := make([]repoModel.GameStats, 0, len(r.games))
	for _, g := range r.games {
		result = append(result, g.stats)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].GameSlug < result[j].GameSlug })
	return result
}
