package player

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type BalanceResponse struct {
	PlayerID int64           `json:"player_id"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

type RoundResponse struct {
	ID          string          `json:"id"`
	Game        string          `json:"game"`
	GameType    string          `json:"game_type"`
	SessionID   string          `json:"session_id,omitempty"`
	Action      string          `json:"action"`
	Bet         decimal.Decimal `json:"bet"`
	Payout      decimal.Decimal `json:"payout"`
	Bonus       decimal.Decimal `json:"bonus"`
	Multiplier  float64         `json:"multiplier"`
	Tag         string          `json:"tag"`
	IsWin       bool            `json:"is_win"`
	Data        json.RawMessage `json:"data"`
	CompletedAt time.Time       `json:"completed_at"`
}

type TransactionResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	Metadata      map[string]any  `json:"metadata"`
	CreatedAt     time.Time       `json:"created_at"`
}

type StatsResponse struct {
	TotalRounds int             `json:"total_rounds"`
	TotalWins   int             `json:"total_wins"`
	WinRate     float64         `json:"win_rate"` // Процент
	TotalBet    decimal.Decimal `json:"total_bet"`
	TotalWon    decimal.Decimal `json:"total_won"`
}

type AchievementResponse struct {
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Reward      decimal.Decimal `json:"reward"`
	Game        string          `json:"game"`
	RoundID     string          `json:"round_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DepositRequest подтверждённый внешний платёж
type DepositRequest struct {
	PlayerID  int64           `json:"player_id" validate:"required,gt=0"`
	Amount    decimal.Decimal `json:"amount"`
	PaymentID string          `json:"payment_id" validate:"required,max=128"`
	Currency  string          `json:"currency" validate:"max=8"`
	Method    string          `json:"method" validate:"max=32"`
}
