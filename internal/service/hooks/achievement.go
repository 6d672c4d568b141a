package hooks

import (
	"casino_settlement/internal/logger"
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	bigWinProfit   = decimal.NewFromInt(1000)
	firstWinReward = decimal.NewFromInt(100)
	bigWinReward   = decimal.NewFromInt(500)
)

// AchievementHook выдаёт FIRST_WIN и BIG_WIN. Повторную выдачу отсекает
// уникальный ключ в хранилище. Награда только записывается, баланс не меняется.
type AchievementHook struct {
	repo repository.AchievementRepository
	now  func() time.Time
}

func NewAchievementHook(repo repository.AchievementRepository) *AchievementHook {
	return &AchievementHook{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (*AchievementHook) Name() string { return "achievements" }

func (h *AchievementHook) AfterSettlement(ctx context.Context, event model.SettlementEvent) error {
	round := event.Round
	if round == nil {
		return nil
	}

	var candidates []model.Achievement
	if round.IsWin {
		candidates = append(candidates, model.Achievement{
			Key:         fmt.Sprintf("first_win:%d", event.PlayerID),
			Type:        model.AchievementFirstWin,
			Title:       "First Victory",
			Description: "Won your first game!",
			Reward:      firstWinReward,
		})
	}
	if round.Profit().GreaterThan(bigWinProfit) {
		candidates = append(candidates, model.Achievement{
			Key:         "big_win:" + round.ID,
			Type:        model.AchievementBigWin,
			Title:       "Big Winner",
			Description: "Won over 1000 NeonCoins in a single round!",
			Reward:      bigWinReward,
		})
	}

	for _, a := range candidates {
		a.PlayerID = event.PlayerID
		a.GameSlug = event.Game.Slug
		a.RoundID = round.ID
		a.CreatedAt = h.now()

		created, err := h.repo.CreateAchievement(ctx, &a)
		if err != nil {
			return err
		}
		if created {
			logger.FromContext(ctx).Info("achievement unlocked",
				"player_id", a.PlayerID,
				"type", a.Type,
				"round_id", a.RoundID)
		}
	}
	return nil
}
