package achievement_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "achievements"
	colKey         = "key"
	colPlayerID    = "player_id"
	colGameSlug    = "game_slug"
	colType        = "achievement_type"
	colTitle       = "title"
	colDescription = "description"
	colReward      = "reward"
	colRoundID     = "round_id"
	colCreatedAt   = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAchievementRepository(dbc *pgxpool.Pool) repository.AchievementRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateAchievement - выдает достижение. Возвращает false, если ключ уже занят
func (r *repo) CreateAchievement(ctx context.Context, a *model.Achievement) (bool, error) {
	sqlStr, args, err := psql.Insert(table).
		Columns(colKey, colPlayerID, colGameSlug, colType, colTitle, colDescription, colReward,
			colRoundID, colCreatedAt).
		Values(a.Key, a.PlayerID, a.GameSlug, string(a.Type), a.Title, a.Description, a.Reward,
			a.RoundID, a.CreatedAt).
		Suffix("ON CONFLICT (key) DO NOTHING").
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, repository.MapPgError(err)
	}

	return tag.RowsAffected() == 1, nil
}

// GetAchievementsByPlayer - достижения игрока в порядке выдачи
func (r *repo) GetAchievementsByPlayer(ctx context.Context, playerID int64) ([]model.Achievement, error) {
	sqlStr, args, err := psql.Select(colKey, colPlayerID, colGameSlug, colType, colTitle, colDescription,
		colReward, colRoundID, colCreatedAt).
		From(table).
		Where(sq.Eq{colPlayerID: playerID}).
		OrderBy(colCreatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	result := make([]model.Achievement, 0)
	for rows.Next() {
		var (
			a       model.Achievement
			achType string
		)
		if err = rows.Scan(&a.Key, &a.PlayerID, &a.GameSlug, &achType, &a.Title, &a.Description,
			&a.Reward, &a.RoundID, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Type = model.AchievementType(achType)
		result = append(result, a)
	}

	return result, rows.Err()
}
