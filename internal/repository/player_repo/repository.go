package player_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table       = "players"
	colID       = "id"
	colBalance  = "balance"
	colCurrency = "currency"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPlayerRepository(dbc *pgxpool.Pool) repository.PlayerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreatePlayer - создает игрока с начальным балансом
func (r *repo) CreatePlayer(ctx context.Context, player *model.Player) error {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colID, colBalance, colCurrency).
		Values(player.ID, player.Balance, player.Currency)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return repository.MapPgError(err)
}

// GetPlayer - возвращает игрока (ID, Balance, Currency) по ID
func (r *repo) GetPlayer(ctx context.Context, id int64) (*model.Player, error) {
	return r.get(ctx, psql.Select(colID, colBalance, colCurrency).
		From(table).
		Where(sq.Eq{colID: id}))
}

// GetPlayerForUpdate - то же, что GetPlayer, но блокирует строку до конца транзакции.
// Все списания и начисления одного игрока выстраиваются в очередь на этой блокировке.
func (r *repo) GetPlayerForUpdate(ctx context.Context, id int64) (*model.Player, error) {
	return r.get(ctx, psql.Select(colID, colBalance, colCurrency).
		From(table).
		Where(sq.Eq{colID: id}).
		Suffix("FOR UPDATE"))
}

func (r *repo) get(ctx context.Context, query sq.SelectBuilder) (*model.Player, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var player model.Player
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&player.ID, &player.Balance, &player.Currency)
	if err != nil {
		return nil, repository.MapPgError(err)
	}

	return &player, nil
}

// UpdateBalance - записывает новый баланс игрока.
// Принимает ID игрока и итоговую сумму баланса
func (r *repo) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	// Формируем запрос
	query := psql.Update(table).
		Set(colBalance, balance).
		Where(sq.Eq{colID: id})

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
