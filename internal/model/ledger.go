package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry одно изменение баланса
type LedgerEntry struct {
	PlayerID int64
	Type     TransactionType
	Amount   decimal.Decimal
	Metadata map[string]any
}

// DepositMeta данные платежа из внешней системы
type DepositMeta struct {
	PaymentID string
	Currency  string
	Method    string
}

// RoundInput то, что знает оркестратор к моменту записи раунда
type RoundInput struct {
	ID        string
	PlayerID  int64
	Game      GameConfig
	SessionID string
	Action    ActionType
	Bet       decimal.Decimal
	Outcome   Outcome
	StartedAt time.Time
}
