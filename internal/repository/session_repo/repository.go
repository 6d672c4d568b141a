package session_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "game_sessions"
	colID          = "id"
	colPlayerID    = "player_id"
	colGameSlug    = "game_slug"
	colKind        = "kind"
	colBet         = "bet"
	colBonusRounds = "bonus_rounds"
	colSpins       = "spins"
	colMinesCount  = "mines_count"
	colCreatedAt   = "created_at"
	colLastSpunAt  = "last_spun_at"
	colCompletedAt = "completed_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSessionRepository(dbc *pgxpool.Pool) repository.SessionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateSession - создает игровую сессию в БД.
// Вторую открытую сессию на ту же игру не пропустит частичный уникальный индекс,
// ошибка возвращается как model.ErrConflict
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colID, colPlayerID, colGameSlug, colKind, colBet, colBonusRounds, colSpins,
			colMinesCount, colCreatedAt, colLastSpunAt, colCompletedAt).
		Values(session.ID, session.PlayerID, session.GameSlug, string(session.Kind), session.Bet,
			session.BonusRounds, session.Spins, session.MinesCount, session.CreatedAt,
			session.LastSpunAt, session.CompletedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return repository.MapPgError(err)
}

// GetOpenSession - открытая сессия игрока в игре, строка блокируется до конца транзакции
func (r *repo) GetOpenSession(ctx context.Context, playerID int64, gameSlug string) (*model.Session, error) {
	// Формируем запрос
	query := psql.Select(colID, colPlayerID, colGameSlug, colKind, colBet, colBonusRounds, colSpins,
		colMinesCount, colCreatedAt, colLastSpunAt, colCompletedAt).
		From(table).
		Where(sq.Eq{colPlayerID: playerID, colGameSlug: gameSlug}).
		Where(sq.Eq{colCompletedAt: nil}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		session model.Session
		kind    string
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&session.ID, &session.PlayerID, &session.GameSlug, &kind, &session.Bet, &session.BonusRounds,
			&session.Spins, &session.MinesCount, &session.CreatedAt, &session.LastSpunAt, &session.CompletedAt)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	session.Kind = model.SessionKind(kind)

	return &session, nil
}

// UpdateSession - сохраняет счетчики и время закрытия сессии
func (r *repo) UpdateSession(ctx context.Context, session *model.Session) error {
	// Формируем запрос
	query := psql.Update(table).
		Set(colBonusRounds, session.BonusRounds).
		Set(colSpins, session.Spins).
		Set(colLastSpunAt, session.LastSpunAt).
		Set(colCompletedAt, session.CompletedAt).
		Where(sq.Eq{colID: session.ID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
