// Package profile сводная статистика игрока и его достижения
package profile

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"casino_settlement/internal/service"
	"context"
	"slices"

	"github.com/shopspring/decimal"
)

type serv struct {
	roundRepo       repository.RoundRepository
	achievementRepo repository.AchievementRepository
}

func NewProfileService(
	roundRepo repository.RoundRepository,
	achievementRepo repository.AchievementRepository,
) service.ProfileService {
	return &serv{
		roundRepo:       roundRepo,
		achievementRepo: achievementRepo,
	}
}

// Stats считает по записанным раундам. Победой считается любой ненулевой выигрыш.
func (s *serv) Stats(ctx context.Context, playerID int64) (*model.PlayerStats, error) {
	rounds, err := s.roundRepo.GetRoundsByPlayer(ctx, playerID)
	if err != nil {
		return nil, model.Classify("profile: stats", err)
	}

	stats := &model.PlayerStats{
		TotalBet: decimal.Zero,
		TotalWon: decimal.Zero,
	}
	for _, r := range rounds {
		stats.TotalRounds++
		stats.TotalBet = stats.TotalBet.Add(r.Bet)
		won := r.Payout.Add(r.Bonus)
		stats.TotalWon = stats.TotalWon.Add(won)
		if won.IsPositive() {
			stats.TotalWins++
		}
	}
	if stats.TotalRounds > 0 {
		stats.WinRate = float64(stats.TotalWins) / float64(stats.TotalRounds) * 100
	}
	return stats, nil
}

// Achievements последние достижения, новые первыми. limit <= 0 без ограничения
func (s *serv) Achievements(ctx context.Context, playerID int64, limit int) ([]model.Achievement, error) {
	list, err := s.achievementRepo.GetAchievementsByPlayer(ctx, playerID)
	if err != nil {
		return nil, model.Classify("profile: achievements", err)
	}

	slices.Reverse(list)
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}
