package profile

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository/memory_repo"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	ctx := context.Background()
	store := memory_repo.NewStore()
	rounds := memory_repo.NewRoundRepository(store)
	svc := NewProfileService(rounds, memory_repo.NewAchievementRepository(store))

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	played := []struct {
		bet, payout string
	}{
		{"10", "0"},
		{"10", "5"},
		{"20", "40"},
		{"10", "0"},
	}
	for i, p := range played {
		require.NoError(t, rounds.CreateRound(ctx, &model.Round{
			ID:          fmt.Sprintf("r%d", i),
			PlayerID:    1,
			GameSlug:    "slots",
			Bet:         decimal.RequireFromString(p.bet),
			Payout:      decimal.RequireFromString(p.payout),
			CompletedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	st, err := svc.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, st.TotalRounds)
	// частичный возврат тоже победа
	assert.Equal(t, 2, st.TotalWins)
	assert.InDelta(t, 50.0, st.WinRate, 1e-9)
	assert.Equal(t, "50", st.TotalBet.String())
	assert.Equal(t, "45", st.TotalWon.String())

	empty, err := svc.Stats(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalRounds)
	assert.Zero(t, empty.WinRate)
}

func TestAchievements_NewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	store := memory_repo.NewStore()
	repo := memory_repo.NewAchievementRepository(store)
	svc := NewProfileService(memory_repo.NewRoundRepository(store), repo)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 3 {
		_, err := repo.CreateAchievement(ctx, &model.Achievement{
			Key:       fmt.Sprintf("big_win:r%d", i),
			PlayerID:  1,
			Type:      model.AchievementBigWin,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	list, err := svc.Achievements(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "big_win:r2", list[0].Key)
	assert.Equal(t, "big_win:r1", list[1].Key)

	all, err := svc.Achievements(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
