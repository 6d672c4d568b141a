package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GameType тип игры из каталога
type GameType string

const (
	GameSlot      GameType = "SLOT"
	GameRoulette  GameType = "ROULETTE"
	GameBlackjack GameType = "BLACKJACK"
	GameWheel     GameType = "WHEEL"
	GamePlinko    GameType = "PLINKO"
	GameMines     GameType = "MINES"
	GameCoinflip  GameType = "COINFLIP"
	GameJackpot   GameType = "JACKPOT"
)

var knownGameTypes = map[GameType]struct{}{
	GameSlot: {}, GameRoulette: {}, GameBlackjack: {}, GameWheel: {},
	GamePlinko: {}, GameMines: {}, GameCoinflip: {}, GameJackpot: {},
}

// Valid проверяет, что тип игры известен ядру
func (t GameType) Valid() bool {
	_, ok := knownGameTypes[t]
	return ok
}

var hundred = decimal.NewFromInt(100)

// GameConfig настройки игры. Редактируются админкой, ядро только читает.
type GameConfig struct {
	Slug   string
	Title  string
	Type   GameType
	MinBet decimal.Decimal
	MaxBet decimal.Decimal
	// RTP в процентах (0, 100]
	RTP    decimal.Decimal
	Active bool
	// SpinClosesSession закрывать ли сессию после спина
	SpinClosesSession bool
}

// Validate проверяет инварианты конфигурации
func (g GameConfig) Validate() error {
	if g.Slug == "" {
		return NewError(KindValidation, "game slug is empty")
	}
	if !g.Type.Valid() {
		return NewError(KindValidation, fmt.Sprintf("unknown game type %q", g.Type))
	}
	if g.MinBet.IsNegative() || g.MinBet.GreaterThan(g.MaxBet) {
		return NewError(KindValidation, fmt.Sprintf("game %s: min_bet %s > max_bet %s", g.Slug, g.MinBet, g.MaxBet))
	}
	if !g.RTP.IsPositive() || g.RTP.GreaterThan(hundred) {
		return NewError(KindValidation, fmt.Sprintf("game %s: rtp %s out of (0, 100]", g.Slug, g.RTP))
	}
	return nil
}

// RTPFraction RTP как доля (0, 1]
func (g GameConfig) RTPFraction() float64 {
	f, _ := g.RTP.Div(hundred).Float64()
	return f
}

// CheckBet ставка должна быть положительной и лежать в [min_bet, max_bet]
func (g GameConfig) CheckBet(bet decimal.Decimal) error {
	if !bet.IsPositive() {
		return NewError(KindValidation, "bet amount must be positive")
	}
	if bet.LessThan(g.MinBet) || bet.GreaterThan(g.MaxBet) {
		return NewError(KindValidation, fmt.Sprintf("bet %s outside [%s, %s]", bet, g.MinBet, g.MaxBet))
	}
	return nil
}
