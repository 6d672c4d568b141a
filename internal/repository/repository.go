package repository

import (
	"casino_settlement/internal/model"
	"context"

	"github.com/shopspring/decimal"
)

// Все методы присоединяются к транзакции из ctx, если она открыта через trm.Manager.
// Отсутствующая запись возвращается как model.ErrNotFound,
// нарушение уникальности как model.ErrConflict.

type PlayerRepository interface {
	CreatePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id int64) (*model.Player, error)
	// GetPlayerForUpdate читает игрока с блокировкой строки до конца транзакции
	GetPlayerForUpdate(ctx context.Context, id int64) (*model.Player, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error
}

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *model.Transaction) error
	GetTransactionsByPlayer(ctx context.Context, playerID int64) ([]model.Transaction, error)
}

type RoundRepository interface {
	CreateRound(ctx context.Context, round *model.Round) error
	GetRoundsByPlayer(ctx context.Context, playerID int64) ([]model.Round, error)
}

type SessionRepository interface {
	// CreateSession ErrConflict, если у пары (игрок, игра) уже есть открытая сессия
	CreateSession(ctx context.Context, session *model.Session) error
	// GetOpenSession открытая сессия с блокировкой строки
	GetOpenSession(ctx context.Context, playerID int64, gameSlug string) (*model.Session, error)
	UpdateSession(ctx context.Context, session *model.Session) error
}

type GameRepository interface {
	GetGame(ctx context.Context, slug string) (*model.GameConfig, error)
	ListGames(ctx context.Context) ([]model.GameConfig, error)
	UpsertGame(ctx context.Context, game model.GameConfig) error
}

type IdempotencyRepository interface {
	GetRecord(ctx context.Context, key string) (*model.IdempotencyRecord, error)
	// SaveRecord ErrConflict, если ключ уже занят
	SaveRecord(ctx context.Context, record *model.IdempotencyRecord) error
}

type AchievementRepository interface {
	// CreateAchievement false, если достижение с таким Key уже выдано
	CreateAchievement(ctx context.Context, achievement *model.Achievement) (bool, error)
	GetAchievementsByPlayer(ctx context.Context, playerID int64) ([]model.Achievement, error)
}
