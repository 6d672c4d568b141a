package catalog

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"casino_settlement/internal/service"
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type serv struct {
	gameRepo repository.GameRepository
	lru      *expirable.LRU[string, model.GameConfig]
}

// NewCatalogService каталог игр поверх репозитория с LRU-кэшем.
// Изменения из админки видны не позже чем через ttl.
func NewCatalogService(gameRepo repository.GameRepository, size int, ttl time.Duration) service.CatalogService {
	return &serv{
		gameRepo: gameRepo,
		lru:      expirable.NewLRU[string, model.GameConfig](size, nil, ttl),
	}
}

// Get конфигурация активной игры. Неизвестная или выключенная игра - NotFound.
func (s *serv) Get(ctx context.Context, slug string) (*model.GameConfig, error) {
	game, ok := s.lru.Get(slug)
	if !ok {
		stored, err := s.gameRepo.GetGame(ctx, slug)
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.WrapError(model.KindNotFound, "game "+slug+" not found", err)
		}
		if err != nil {
			return nil, model.Classify("catalog", err)
		}
		if err = stored.Validate(); err != nil {
			return nil, err
		}
		game = *stored
		s.lru.Add(slug, game)
	}

	if !game.Active {
		return nil, model.NewError(model.KindNotFound, "game "+slug+" is not active")
	}
	return &game, nil
}

// List весь каталог, включая выключенные игры
func (s *serv) List(ctx context.Context) ([]model.GameConfig, error) {
	games, err := s.gameRepo.ListGames(ctx)
	if err != nil {
		return nil, model.Classify("catalog", err)
	}
	return games, nil
}

func (s *serv) Invalidate(slug string) {
	s.lru.Remove(slug)
}
