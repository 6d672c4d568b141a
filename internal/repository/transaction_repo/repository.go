package transaction_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table            = "transactions"
	colID            = "id"
	colPlayerID      = "player_id"
	colType          = "tx_type"
	colAmount        = "amount"
	colBalanceBefore = "balance_before"
	colBalanceAfter  = "balance_after"
	colCurrency      = "currency"
	colStatus        = "status"
	colMetadata      = "metadata"
	colCreatedAt     = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTransactionRepository(dbc *pgxpool.Pool) repository.TransactionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateTransaction - добавляет запись в журнал. Записи журнала не изменяются.
func (r *repo) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	metadata := tx.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	query := psql.Insert(table).
		Columns(colID, colPlayerID, colType, colAmount, colBalanceBefore, colBalanceAfter,
			colCurrency, colStatus, colMetadata, colCreatedAt).
		Values(tx.ID, tx.PlayerID, string(tx.Type), tx.Amount, tx.BalanceBefore, tx.BalanceAfter,
			tx.Currency, tx.Status, metadata, tx.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return repository.MapPgError(err)
}

// GetTransactionsByPlayer - журнал игрока в порядке создания
func (r *repo) GetTransactionsByPlayer(ctx context.Context, playerID int64) ([]model.Transaction, error) {
	query := psql.Select(colID, colPlayerID, colType, colAmount, colBalanceBefore, colBalanceAfter,
		colCurrency, colStatus, colMetadata, colCreatedAt).
		From(table).
		Where(sq.Eq{colPlayerID: playerID}).
		OrderBy(colCreatedAt, colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	result := make([]model.Transaction, 0)
	for rows.Next() {
		var (
			tx     model.Transaction
			txType string
		)
		if err = rows.Scan(&tx.ID, &tx.PlayerID, &txType, &tx.Amount, &tx.BalanceBefore, &tx.BalanceAfter,
			&tx.Currency, &tx.Status, &tx.Metadata, &tx.CreatedAt); err != nil {
			return nil, err
		}
		tx.Type = model.TransactionType(txType)
		result = append(result, tx)
	}

	return result, rows.Err()
}
