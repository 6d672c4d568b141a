package memory_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"
)

type roundRepo struct {
	s *Store
}

func NewRoundRepository(s *Store) repository.RoundRepository {
	return &roundRepo{s: s}
}

func (r *roundRepo) CreateRound(ctx context.Context, round *model.Round) error {
	defer r.s.lock(ctx)()
	for _, existing := range r.s.data.rounds {
		if existing.ID == round.ID {
			return model.ErrConflict
		}
	}
	r.s.data.rounds = append(r.s.data.rounds, *round)
	return nil
}

func (r *roundRepo) GetRoundsByPlayer(ctx context.Context, playerID int64) ([]model.Round, error) {
	defer r.s.lock(ctx)()
	var res []model.Round
	for _, round := range r.s.data.rounds {
		if round.PlayerID == playerID {
			res = append(res, round)
		}
	}
	return res, nil
}
