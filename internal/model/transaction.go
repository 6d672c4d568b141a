package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType тип движения баланса
type TransactionType string

const (
	TransactionBet     TransactionType = "BET"
	TransactionWin     TransactionType = "WIN"
	TransactionDeposit TransactionType = "DEPOSIT"
	TransactionBonus   TransactionType = "BONUS"
)

// IsDebit списание баланса
func (t TransactionType) IsDebit() bool {
	return t == TransactionBet
}

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionBet, TransactionWin, TransactionDeposit, TransactionBonus:
		return true
	}
	return false
}

const TransactionCompleted = "COMPLETED"

// Transaction неизменяемая запись журнала. Создаётся одна на каждое изменение баланса.
type Transaction struct {
	ID            string
	PlayerID      int64
	Type          TransactionType
	Amount        decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	Currency      string
	Status        string
	Metadata      map[string]any
	CreatedAt     time.Time
}

// Signed сумма со знаком: ставка уменьшает баланс, остальное увеличивает
func (t Transaction) Signed() decimal.Decimal {
	if t.Type.IsDebit() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Consistent balance_after == balance_before + signed(amount)
func (t Transaction) Consistent() bool {
	return t.BalanceBefore.Add(t.Signed()).Equal(t.BalanceAfter)
}
