package round_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "rounds"
	colID          = "id"
	colPlayerID    = "player_id"
	colGameSlug    = "game_slug"
	colGameType    = "game_type"
	colSessionID   = "session_id"
	colAction      = "action"
	colBet         = "bet"
	colPayout      = "payout"
	colBonus       = "bonus"
	colMultiplier  = "multiplier"
	colTag         = "tag"
	colIsWin       = "is_win"
	colStatus      = "status"
	colData        = "data"
	colStartedAt   = "started_at"
	colCompletedAt = "completed_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRoundRepository(dbc *pgxpool.Pool) repository.RoundRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateRound - сохраняет сыгранный раунд вместе с деталями исхода (JSONB)
func (r *repo) CreateRound(ctx context.Context, round *model.Round) error {
	var sessionID *string
	if round.SessionID != "" {
		sessionID = &round.SessionID
	}
	data := []byte(round.Data)
	if len(data) == 0 {
		data = []byte("{}")
	}

	query := psql.Insert(table).
		Columns(colID, colPlayerID, colGameSlug, colGameType, colSessionID, colAction, colBet, colPayout,
			colBonus, colMultiplier, colTag, colIsWin, colStatus, colData, colStartedAt, colCompletedAt).
		Values(round.ID, round.PlayerID, round.GameSlug, string(round.GameType), sessionID, string(round.Action),
			round.Bet, round.Payout, round.Bonus, round.Multiplier, string(round.Tag), round.IsWin, round.Status,
			string(data), round.StartedAt, round.CompletedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return repository.MapPgError(err)
}

// GetRoundsByPlayer - история раундов игрока, новые в конце
func (r *repo) GetRoundsByPlayer(ctx context.Context, playerID int64) ([]model.Round, error) {
	query := psql.Select(colID, colPlayerID, colGameSlug, colGameType, colSessionID, colAction, colBet, colPayout,
		colBonus, colMultiplier, colTag, colIsWin, colStatus, colData, colStartedAt, colCompletedAt).
		From(table).
		Where(sq.Eq{colPlayerID: playerID}).
		OrderBy(colCompletedAt, colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	result := make([]model.Round, 0)
	for rows.Next() {
		var (
			round                 model.Round
			sessionID             *string
			gameType, action, tag string
			data                  []byte
		)
		if err = rows.Scan(&round.ID, &round.PlayerID, &round.GameSlug, &gameType, &sessionID, &action,
			&round.Bet, &round.Payout, &round.Bonus, &round.Multiplier, &tag, &round.IsWin, &round.Status,
			&data, &round.StartedAt, &round.CompletedAt); err != nil {
			return nil, err
		}
		if sessionID != nil {
			round.SessionID = *sessionID
		}
		round.GameType = model.GameType(gameType)
		round.Action = model.ActionType(action)
		round.Tag = model.OutcomeTag(tag)
		round.Data = data
		result = append(result, round)
	}

	return result, rows.Err()
}
