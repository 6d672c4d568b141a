package memory_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"
	"slices"
)

type achievementRepo struct {
	s *Store
}

func NewAchievementRepository(s *Store) repository.AchievementRepository {
	return &achievementRepo{s: s}
}

func (r *achievementRepo) CreateAchievement(ctx context.Context, a *model.Achievement) (bool, error) {
	defer r.s.lock(ctx)()
	if _, ok := r.s.data.achievements[a.Key]; ok {
		return false, nil
	}
	r.s.data.achievements[a.Key] = *a
	return true, nil
}

func (r *achievementRepo) GetAchievementsByPlayer(ctx context.Context, playerID int64) ([]model.Achievement, error) {
	defer r.s.lock(ctx)()
	var res []model.Achievement
	for _, a := range r.s.data.achievements {
		if a.PlayerID == playerID {
			res = append(res, a)
		}
	}
	slices.SortFunc(res, func(a, b model.Achievement) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return res, nil
}
