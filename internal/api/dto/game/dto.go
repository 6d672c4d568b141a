package game

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type ActionRequest struct {
	Action         string          `json:"action" validate:"required,oneof=bet spin collect bonus slots_play blackjack_play wheel_play plinko_play mines_bet mines_cashout coinflip_play jackpot_play"`
	BetAmount      decimal.Decimal `json:"bet_amount"`                                              // Ставка, для spin можно 0 (берётся из сессии)
	Choice         string          `json:"choice" validate:"omitempty,oneof=heads tails"`           // Сторона монеты
	Difficulty     string          `json:"difficulty" validate:"omitempty,oneof=easy normal hard"` // Сложность plinko
	MinesCount     int             `json:"mines_count" validate:"omitempty,min=1,max=24"`
	Multiplier     *float64        `json:"multiplier" validate:"omitempty,min=0"` // Множитель кэшаута мин
	Revealed       int             `json:"revealed" validate:"min=0"`
	IdempotencyKey string          `json:"idempotency_key" validate:"max=128"`
}

type ActionResponse struct {
	Action     string          `json:"action"`
	Game       string          `json:"game"`
	Tag        string          `json:"tag"`
	Bet        decimal.Decimal `json:"bet"`
	Payout     decimal.Decimal `json:"payout"`
	Bonus      decimal.Decimal `json:"bonus"`
	Multiplier float64         `json:"multiplier"`
	Profit     decimal.Decimal `json:"profit"`
	IsWin      bool            `json:"is_win"`
	NewBalance decimal.Decimal `json:"new_balance"`
	RoundID    string          `json:"round_id,omitempty"`
	SessionID  string          `json:"session_id,omitempty"`
	Detail     json.RawMessage `json:"detail"`
	Degraded   bool            `json:"degraded,omitempty"` // Раунд не записан
	Replayed   bool            `json:"replayed,omitempty"` // Повтор по idempotency_key
}

type GameResponse struct {
	Slug   string          `json:"slug"`
	Title  string          `json:"title"`
	Type   string          `json:"type"`
	MinBet decimal.Decimal `json:"min_bet"`
	MaxBet decimal.Decimal `json:"max_bet"`
	RTP    decimal.Decimal `json:"rtp"`
}
