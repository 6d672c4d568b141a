package hooks

import (
	"casino_settlement/internal/model"
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const gameUpdateType = "game.update"

// Publisher часть redis.Client, нужная уведомлениям
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// GameUpdate сообщение в канал игрока
type GameUpdate struct {
	Type       string `json:"type"`
	RoundID    string `json:"round_id"`
	GameTitle  string `json:"game_title"`
	Result     string `json:"result"`
	IsWin      bool   `json:"is_win"`
	NewBalance string `json:"new_balance"`
}

// NotifyHook публикует game.update в канал user:<id> после каждого раунда
type NotifyHook struct {
	publisher Publisher
}

func NewNotifyHook(publisher Publisher) *NotifyHook {
	return &NotifyHook{publisher: publisher}
}

func (*NotifyHook) Name() string { return "notify" }

// UserChannel канал игрока в redis
func UserChannel(playerID int64) string {
	return fmt.Sprintf("user:%d", playerID)
}

func (h *NotifyHook) AfterSettlement(ctx context.Context, event model.SettlementEvent) error {
	if event.Result.RoundID == "" {
		return nil
	}

	payload, err := json.Marshal(GameUpdate{
		Type:       gameUpdateType,
		RoundID:    event.Result.RoundID,
		GameTitle:  event.Game.Title,
		Result:     event.Result.Payout.Add(event.Result.Bonus).String(),
		IsWin:      event.Result.IsWin,
		NewBalance: event.Result.NewBalance.String(),
	})
	if err != nil {
		return err
	}

	return h.publisher.Publish(ctx, UserChannel(event.PlayerID), payload).Err()
}
