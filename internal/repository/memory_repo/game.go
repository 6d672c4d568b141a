package memory_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"
	"slices"
	"strings"
)

type gameRepo struct {
	s *Store
}

func NewGameRepository(s *Store) repository.GameRepository {
	return &gameRepo{s: s}
}

func (r *gameRepo) GetGame(ctx context.Context, slug string) (*model.GameConfig, error) {
	defer r.s.lock(ctx)()
	g, ok := r.s.data.games[slug]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &g, nil
}

func (r *gameRepo) ListGames(ctx context.Context) ([]model.GameConfig, error) {
	defer r.s.lock(ctx)()
	res := make([]model.GameConfig, 0, len(r.s.data.games))
	for _, g := range r.s.data.games {
		res = append(res, g)
	}
	slices.SortFunc(res, func(a, b model.GameConfig) int { return strings.Compare(a.Slug, b.Slug) })
	return res, nil
}

func (r *gameRepo) UpsertGame(ctx context.Context, game model.GameConfig) error {
	defer r.s.lock(ctx)()
	r.s.data.games[game.Slug] = game
	return nil
}
