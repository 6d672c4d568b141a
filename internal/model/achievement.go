package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AchievementType string

const (
	AchievementFirstWin AchievementType = "FIRST_WIN"
	AchievementBigWin   AchievementType = "BIG_WIN"
)

// Achievement выданное достижение. Key уникален и защищает от повторной выдачи.
type Achievement struct {
	Key         string
	PlayerID    int64
	GameSlug    string
	Type        AchievementType
	Title       string
	Description string
	Reward      decimal.Decimal
	RoundID     string
	CreatedAt   time.Time
}
