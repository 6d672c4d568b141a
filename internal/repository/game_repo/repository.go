package game_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table                = "games"
	colSlug              = "slug"
	colTitle             = "title"
	colType              = "game_type"
	colMinBet            = "min_bet"
	colMaxBet            = "max_bet"
	colRTP               = "rtp"
	colActive            = "active"
	colSpinClosesSession = "spin_closes_session"
)

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns = []string{colSlug, colTitle, colType, colMinBet, colMaxBet, colRTP, colActive, colSpinClosesSession}
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGameRepository(dbc *pgxpool.Pool) repository.GameRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (model.GameConfig, error) {
	var (
		game     model.GameConfig
		gameType string
	)
	err := row.Scan(&game.Slug, &game.Title, &gameType, &game.MinBet, &game.MaxBet, &game.RTP,
		&game.Active, &game.SpinClosesSession)
	game.Type = model.GameType(gameType)
	return game, err
}

// GetGame - конфигурация игры по slug
func (r *repo) GetGame(ctx context.Context, slug string) (*model.GameConfig, error) {
	sqlStr, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{colSlug: slug}).
		ToSql()
	if err != nil {
		return nil, err
	}

	game, err := scanGame(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, repository.MapPgError(err)
	}

	return &game, nil
}

// ListGames - весь каталог, отсортированный по slug
func (r *repo) ListGames(ctx context.Context) ([]model.GameConfig, error) {
	sqlStr, args, err := psql.Select(columns...).
		From(table).
		OrderBy(colSlug).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	result := make([]model.GameConfig, 0)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, game)
	}

	return result, rows.Err()
}

// UpsertGame - добавляет игру или перезаписывает её настройки
func (r *repo) UpsertGame(ctx context.Context, game model.GameConfig) error {
	query := psql.Insert(table).
		Columns(columns...).
		Values(game.Slug, game.Title, string(game.Type), game.MinBet, game.MaxBet, game.RTP,
			game.Active, game.SpinClosesSession).
		Suffix(`ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			game_type = EXCLUDED.game_type,
			min_bet = EXCLUDED.min_bet,
			max_bet = EXCLUDED.max_bet,
			rtp = EXCLUDED.rtp,
			active = EXCLUDED.active,
			spin_closes_session = EXCLUDED.spin_closes_session`)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return repository.MapPgError(err)
}
