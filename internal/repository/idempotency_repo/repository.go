package idempotency_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "idempotency_keys"
	colKey         = "key"
	colPlayerID    = "player_id"
	colFingerprint = "fingerprint"
	colPayload     = "payload"
	colCreatedAt   = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewIdempotencyRepository(dbc *pgxpool.Pool) repository.IdempotencyRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetRecord - сохраненный ответ по ключу, строка блокируется до конца транзакции
func (r *repo) GetRecord(ctx context.Context, key string) (*model.IdempotencyRecord, error) {
	sqlStr, args, err := psql.Select(colKey, colPlayerID, colFingerprint, colPayload, colCreatedAt).
		From(table).
		Where(sq.Eq{colKey: key}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		record  model.IdempotencyRecord
		payload []byte
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&record.Key, &record.PlayerID, &record.Fingerprint, &payload, &record.CreatedAt)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	record.Payload = payload

	return &record, nil
}

// SaveRecord - сохраняет ответ. Повторный ключ возвращает model.ErrConflict
func (r *repo) SaveRecord(ctx context.Context, record *model.IdempotencyRecord) error {
	sqlStr, args, err := psql.Insert(table).
		Columns(colKey, colPlayerID, colFingerprint, colPayload, colCreatedAt).
		Values(record.Key, record.PlayerID, record.Fingerprint, string(record.Payload), record.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return repository.MapPgError(err)
}
