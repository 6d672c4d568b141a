package service

import (
	"casino_settlement/internal/model"
	statsModel "casino_settlement/internal/repository/stats_repo/model"
	"context"

	"github.com/shopspring/decimal"
)

// LedgerService единственное место, где меняется баланс
type LedgerService interface {
	Debit(ctx context.Context, entry model.LedgerEntry) (*model.Transaction, error)
	Credit(ctx context.Context, entry model.LedgerEntry) (*model.Transaction, error)
	CreditExternalDeposit(ctx context.Context, playerID int64, amount decimal.Decimal, meta model.DepositMeta) (*model.Transaction, error)
	Balance(ctx context.Context, playerID int64) (*model.Player, error)
	Transactions(ctx context.Context, playerID int64) ([]model.Transaction, error)
}

// RecorderService раунды и игровые сессии
type RecorderService interface {
	RecordRound(ctx context.Context, in model.RoundInput) (*model.Round, error)
	Rounds(ctx context.Context, playerID int64) ([]model.Round, error)

	OpenSession(ctx context.Context, playerID int64, gameSlug string, bet decimal.Decimal, kind model.SessionKind, minesCount int) (*model.Session, error)
	CurrentSession(ctx context.Context, playerID int64, gameSlug string) (*model.Session, error)
	MarkSpun(ctx context.Context, session *model.Session) error
	IncrementBonus(ctx context.Context, session *model.Session) error
	CloseSession(ctx context.Context, session *model.Session) error
}

// CatalogService чтение конфигурации игр
type CatalogService interface {
	Get(ctx context.Context, slug string) (*model.GameConfig, error)
	List(ctx context.Context) ([]model.GameConfig, error)
	Invalidate(slug string)
}

// SettlementService точка входа для игровых действий
type SettlementService interface {
	Settle(ctx context.Context, wager model.Wager) (*model.SettlementResult, error)
	Rounds(ctx context.Context, playerID int64) ([]model.Round, error)
	Transactions(ctx context.Context, playerID int64) ([]model.Transaction, error)
	Balance(ctx context.Context, playerID int64) (*model.Player, error)
	CreditExternalDeposit(ctx context.Context, playerID int64, amount decimal.Decimal, meta model.DepositMeta) (*model.Transaction, error)
}

// StatsService наблюдаемый RTP по играм
type StatsService interface {
	GameStats(slug string) (statsModel.GameStats, bool)
}

// SettlementHook побочные эффекты после коммита. Ошибка хука не отменяет расчёт.
type SettlementHook interface {
	AfterSettlement(ctx context.Context, event model.SettlementEvent) error
}

// ProfileService статистика и достижения игрока
type ProfileService interface {
	Stats(ctx context.Context, playerID int64) (*model.PlayerStats, error)
	Achievements(ctx context.Context, playerID int64, limit int) ([]model.Achievement, error)
}
