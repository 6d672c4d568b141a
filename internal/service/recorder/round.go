package recorder

import (
	"casino_settlement/internal/model"
	"context"

	"github.com/google/uuid"
)

// RecordRound сохраняет завершённый раунд. Выплата и бонус не бывают отрицательными,
// победа - выплата строго больше ставки.
func (s *serv) RecordRound(ctx context.Context, in model.RoundInput) (*model.Round, error) {
	out := in.Outcome
	if in.Bet.IsNegative() || out.Payout.IsNegative() || out.Bonus.IsNegative() {
		return nil, model.NewError(model.KindValidation, "round amounts must not be negative")
	}

	data, err := model.MarshalDetail(out.Detail)
	if err != nil {
		return nil, model.WrapError(model.KindInternal, "marshal round detail", err)
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	completed := s.now()
	started := in.StartedAt
	if started.IsZero() {
		started = completed
	}

	round := &model.Round{
		ID:          id,
		PlayerID:    in.PlayerID,
		GameSlug:    in.Game.Slug,
		GameType:    in.Game.Type,
		SessionID:   in.SessionID,
		Action:      in.Action,
		Bet:         in.Bet,
		Payout:      out.Payout,
		Bonus:       out.Bonus,
		Multiplier:  out.Multiplier,
		Tag:         out.Tag,
		IsWin:       out.Payout.GreaterThan(in.Bet),
		Status:      model.RoundCompleted,
		Data:        data,
		StartedAt:   started,
		CompletedAt: completed,
	}
	if err = s.roundRepo.CreateRound(ctx, round); err != nil {
		return nil, model.Classify("record round", err)
	}

	return round, nil
}

// Rounds история раундов игрока
func (s *serv) Rounds(ctx context.Context, playerID int64) ([]model.Round, error) {
	rounds, err := s.roundRepo.GetRoundsByPlayer(ctx, playerID)
	if err != nil {
		return nil, model.Classify("rounds", err)
	}
	return rounds, nil
}
