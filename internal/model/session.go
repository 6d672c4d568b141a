package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionKind вид игровой сессии
type SessionKind string

const (
	SessionTable SessionKind = "table"
	SessionMines SessionKind = "mines"
)

// Session открытый контекст ставки bet -> spin -> collect.
// На пару (игрок, игра) открыта максимум одна сессия.
type Session struct {
	ID          string
	PlayerID    int64
	GameSlug    string
	Kind        SessionKind
	Bet         decimal.Decimal
	BonusRounds int
	Spins       int
	MinesCount  int
	CreatedAt   time.Time
	LastSpunAt  *time.Time
	CompletedAt *time.Time
}

func (s Session) Open() bool {
	return s.CompletedAt == nil
}
