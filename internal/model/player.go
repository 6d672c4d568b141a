package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

const DefaultCurrency = "NEON"

// Player владелец баланса
type Player struct {
	ID       int64
	Balance  decimal.Decimal
	Currency string
}

// PlayerClaims claims токена доступа. ID игрока лежит в RegisteredClaims.ID.
type PlayerClaims struct {
	jwt.RegisteredClaims
}

// PlayerStats сводка по раундам игрока
type PlayerStats struct {
	TotalRounds int
	TotalWins   int
	// WinRate в процентах
	WinRate  float64
	TotalBet decimal.Decimal
	TotalWon decimal.Decimal
}
