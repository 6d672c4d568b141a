package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const RoundCompleted = "COMPLETED"

// Round запись об одном сыгранном раунде
type Round struct {
	ID          string
	PlayerID    int64
	GameSlug    string
	GameType    GameType
	SessionID   string
	Action      ActionType
	Bet         decimal.Decimal
	Payout      decimal.Decimal
	Bonus       decimal.Decimal
	Multiplier  float64
	Tag         OutcomeTag
	IsWin       bool
	Status      string
	Data        json.RawMessage
	StartedAt   time.Time
	CompletedAt time.Time
}

// Profit выигрыш за вычетом ставки (отрицателен при проигрыше)
func (r Round) Profit() decimal.Decimal {
	return r.Payout.Add(r.Bonus).Sub(r.Bet)
}
