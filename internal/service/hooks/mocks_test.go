package hooks

import (
	"casino_settlement/internal/model"
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAchievementRepository is a mock implementation of repository.AchievementRepository
type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) CreateAchievement(ctx context.Context, a *model.Achievement) (bool, error) {
	args := m.Called(ctx, a)
	return args.Bool(0), args.Error(1)
}

func (m *MockAchievementRepository) GetAchievementsByPlayer(ctx context.Context, playerID int64) ([]model.Achievement, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Achievement), args.Error(1)
}
