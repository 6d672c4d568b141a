package hooks

import (
	"casino_settlement/internal/metrics"
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository/memory_repo"
	"casino_settlement/internal/repository/stats_repo"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type failingHook struct {
	calls int
}

func (*failingHook) Name() string { return "always_fails" }

func (h *failingHook) AfterSettlement(context.Context, model.SettlementEvent) error {
	h.calls++
	return errors.New("downstream is down")
}

type countingHook struct {
	calls int
}

func (*countingHook) Name() string { return "counting" }

func (h *countingHook) AfterSettlement(context.Context, model.SettlementEvent) error {
	h.calls++
	return nil
}

type published struct {
	channel string
	message []byte
}

type fakePublisher struct {
	sent []published
	err  error
}

func (p *fakePublisher) Publish(ctx context.Context, channel string, message any) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if p.err != nil {
		cmd.SetErr(p.err)
		return cmd
	}
	p.sent = append(p.sent, published{channel: channel, message: message.([]byte)})
	cmd.SetVal(1)
	return cmd
}

func roundEvent(slug string, bet, payout int64) model.SettlementEvent {
	round := &model.Round{
		ID:       "round-" + slug,
		PlayerID: 7,
		GameSlug: slug,
		Bet:      decimal.NewFromInt(bet),
		Payout:   decimal.NewFromInt(payout),
		IsWin:    payout > bet,
	}
	return model.SettlementEvent{
		PlayerID: 7,
		Game: model.GameConfig{
			Slug:  slug,
			Title: "Neon " + slug,
			Type:  model.GameSlot,
			RTP:   decimal.NewFromInt(96),
		},
		Result: model.SettlementResult{
			Action:     model.ActionSpin,
			GameSlug:   slug,
			Tag:        model.TagWin,
			Bet:        round.Bet,
			Payout:     round.Payout,
			NewBalance: decimal.NewFromInt(500),
			RoundID:    round.ID,
			IsWin:      round.IsWin,
		},
		Round: round,
	}
}

func TestDispatcher_ErrorsAreSwallowed(t *testing.T) {
	failing := &failingHook{}
	counting := &countingHook{}
	d := NewDispatcher(failing, counting)

	before := testutil.ToFloat64(metrics.HookErrors.WithLabelValues("always_fails"))
	err := d.AfterSettlement(context.Background(), roundEvent("disp", 10, 0))

	require.NoError(t, err)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, counting.calls, "later hooks still run")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.HookErrors.WithLabelValues("always_fails")))
}

func TestMetricsHook(t *testing.T) {
	ev := roundEvent("metrics-slots", 10, 25)
	ev.Result.Degraded = true

	require.NoError(t, NewMetricsHook().AfterSettlement(context.Background(), ev))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SettlementsTotal.WithLabelValues("metrics-slots", string(model.ActionSpin), string(model.TagWin))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DegradedSettlements.WithLabelValues("metrics-slots")))
	assert.Equal(t, 25.0, testutil.ToFloat64(metrics.PaidOut.WithLabelValues("metrics-slots")))
	// spin использует ставку сессии, она уже учтена на bet
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.Wagered.WithLabelValues("metrics-slots")))
}

func TestNotifyHook_PublishesGameUpdate(t *testing.T) {
	pub := &fakePublisher{}
	h := NewNotifyHook(pub)

	require.NoError(t, h.AfterSettlement(context.Background(), roundEvent("slots", 10, 30)))
	require.Len(t, pub.sent, 1)
	assert.Equal(t, "user:7", pub.sent[0].channel)

	var msg GameUpdate
	require.NoError(t, json.Unmarshal(pub.sent[0].message, &msg))
	assert.Equal(t, "game.update", msg.Type)
	assert.Equal(t, "round-slots", msg.RoundID)
	assert.Equal(t, "Neon slots", msg.GameTitle)
	assert.Equal(t, "30", msg.Result)
	assert.True(t, msg.IsWin)
}

func TestNotifyHook_SkipsWithoutRound(t *testing.T) {
	pub := &fakePublisher{}
	ev := roundEvent("slots", 10, 0)
	ev.Result.RoundID = ""
	ev.Round = nil

	require.NoError(t, NewNotifyHook(pub).AfterSettlement(context.Background(), ev))
	assert.Empty(t, pub.sent)
}

func TestNotifyHook_PublishError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("connection refused")}
	err := NewNotifyHook(pub).AfterSettlement(context.Background(), roundEvent("slots", 10, 30))
	assert.Error(t, err)
}

func TestAchievementHook(t *testing.T) {
	ctx := context.Background()
	repo := memory_repo.NewAchievementRepository(memory_repo.NewStore())
	h := NewAchievementHook(repo)

	// проигрыш ничего не даёт
	require.NoError(t, h.AfterSettlement(ctx, roundEvent("loss", 10, 0)))
	list, err := repo.GetAchievementsByPlayer(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, h.AfterSettlement(ctx, roundEvent("small", 10, 20)))
	require.NoError(t, h.AfterSettlement(ctx, roundEvent("small-again", 10, 20)))
	list, err = repo.GetAchievementsByPlayer(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1, "first win is granted once")
	assert.Equal(t, model.AchievementFirstWin, list[0].Type)
	assert.True(t, list[0].Reward.Equal(decimal.NewFromInt(100)))

	big := roundEvent("jackpot", 100, 1500)
	require.NoError(t, h.AfterSettlement(ctx, big))
	require.NoError(t, h.AfterSettlement(ctx, big))
	list, err = repo.GetAchievementsByPlayer(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 2)

	var bigWins int
	for _, a := range list {
		if a.Type == model.AchievementBigWin {
			bigWins++
			assert.Equal(t, "round-jackpot", a.RoundID)
			assert.True(t, a.Reward.Equal(decimal.NewFromInt(500)))
		}
	}
	assert.Equal(t, 1, bigWins)
}

func TestAchievementHook_ProfitMustExceedThreshold(t *testing.T) {
	ctx := context.Background()
	repo := memory_repo.NewAchievementRepository(memory_repo.NewStore())
	h := NewAchievementHook(repo)

	// ровно 1000 прибыли не считается
	require.NoError(t, h.AfterSettlement(ctx, roundEvent("edge", 1000, 2000)))
	list, err := repo.GetAchievementsByPlayer(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.AchievementFirstWin, list[0].Type)
}

func TestStatsHook(t *testing.T) {
	h := NewStatsHook(stats_repo.NewStatsRepository(10))
	ctx := context.Background()

	require.NoError(t, h.AfterSettlement(ctx, roundEvent("stats-slots", 10, 0)))
	require.NoError(t, h.AfterSettlement(ctx, roundEvent("stats-slots", 10, 15)))

	st, ok := h.GameStats("stats-slots")
	require.True(t, ok)
	assert.Equal(t, 2, st.TotalRounds)
	assert.InDelta(t, 75.0, st.WindowRTP, 1e-9)
	assert.InDelta(t, 96.0, st.TargetRTP, 1e-9)
	assert.InDelta(t, 75.0, testutil.ToFloat64(metrics.ObservedRTP.WithLabelValues("stats-slots")), 1e-9)

	_, ok = h.GameStats("unknown")
	assert.False(t, ok)
}

func TestAchievementHook_RepositoryError(t *testing.T) {
	repo := &MockAchievementRepository{}
	repo.On("CreateAchievement", mock.Anything, mock.MatchedBy(func(a *model.Achievement) bool {
		return a.Type == model.AchievementFirstWin && a.Key == "first_win:7"
	})).Return(false, assert.AnError).Once()

	err := NewAchievementHook(repo).AfterSettlement(context.Background(), roundEvent("slots", 10, 20))

	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertExpectations(t)
}

func TestAchievementHook_LossSkipsRepository(t *testing.T) {
	repo := &MockAchievementRepository{}
	// проигрыш не должен трогать хранилище
	err := NewAchievementHook(repo).AfterSettlement(context.Background(), roundEvent("slots", 10, 0))

	require.NoError(t, err)
	repo.AssertNotCalled(t, "CreateAchievement", mock.Anything, mock.Anything)
}
