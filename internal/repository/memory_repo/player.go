package memory_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"

	"github.com/shopspring/decimal"
)

type playerRepo struct {
	s *Store
}

func NewPlayerRepository(s *Store) repository.PlayerRepository {
	return &playerRepo{s: s}
}

func (r *playerRepo) CreatePlayer(ctx context.Context, player *model.Player) error {
	defer r.s.lock(ctx)()
	if _, ok := r.s.data.players[player.ID]; ok {
		return model.ErrConflict
	}
	r.s.data.players[player.ID] = *player
	return nil
}

func (r *playerRepo) GetPlayer(ctx context.Context, id int64) (*model.Player, error) {
	defer r.s.lock(ctx)()
	p, ok := r.s.data.players[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &p, nil
}

// GetPlayerForUpdate внутри транзакции эксклюзивность обеспечивает мьютекс Store
func (r *playerRepo) GetPlayerForUpdate(ctx context.Context, id int64) (*model.Player, error) {
	return r.GetPlayer(ctx, id)
}

func (r *playerRepo) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	defer r.s.lock(ctx)()
	p, ok := r.s.data.players[id]
	if !ok {
		return model.ErrNotFound
	}
	p.Balance = balance
	r.s.data.players[id] = p
	return nil
}
