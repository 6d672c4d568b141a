package outcome

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/rng"

	"github.com/shopspring/decimal"
)

const (
	WheelTableWeighted = "weighted"
	WheelTableFixed    = "fixed"

	wheelBonusMultiplier = 0.1
)

// WeightedWheelSegments пять сегментов (множитель, вероятность)
var WeightedWheelSegments = []rng.Weighted[float64]{
	{Value: 0, Weight: 0.4},
	{Value: 1, Weight: 0.3},
	{Value: 2, Weight: 0.2},
	{Value: 5, Weight: 0.08},
	{Value: 10, Weight: 0.02},
}

// WeightedWheel колесо для spin, сегмент выбирается по весам
type WeightedWheel struct{}

func (WeightedWheel) Compute(bet decimal.Decimal, _ model.GameConfig, _ model.GameParams, src rng.Source) model.Outcome {
	indexed := make([]rng.Weighted[int], len(WeightedWheelSegments))
	for i, seg := range WeightedWheelSegments {
		indexed[i] = rng.Weighted[int]{Value: i, Weight: seg.Weight}
	}
	segment := rng.WeightedChoice(src, indexed)
	mult := WeightedWheelSegments[segment].Value

	payout := payoutOf(bet, mult)
	return model.Outcome{
		Payout:     payout,
		Multiplier: mult,
		Tag:        classify(bet, payout),
		Detail:     model.WheelDetail{Segment: segment, Multiplier: mult, Table: WheelTableWeighted},
	}
}

// FixedWheelTable 24 сектора колеса wheel_play, индекс равновероятен
var FixedWheelTable = []float64{
	0, 0.5, 1, 2, 3, 5, 10, 25,
	0, 1, 2, 2, 3, 5, 10, 0.1,
	0.5, 1, 2, 3, 5, 5, 0, 1,
}

// FixedTableWheel сектор 0.1 - бонус сверх баланса без возврата ставки,
// остальные сектора (включая 0) - "win" с выплатой bet*mult
type FixedTableWheel struct{}

func (FixedTableWheel) Compute(bet decimal.Decimal, _ model.GameConfig, _ model.GameParams, src rng.Source) model.Outcome {
	segment := src.UniformInt(0, len(FixedWheelTable)-1)
	mult := FixedWheelTable[segment]
	detail := model.WheelDetail{Segment: segment, Multiplier: mult, Table: WheelTableFixed}

	if mult == wheelBonusMultiplier {
		return model.Outcome{
			Payout:     decimal.Zero,
			Bonus:      payoutOf(bet, mult),
			Multiplier: mult,
			Tag:        model.TagBonus,
			Detail:     detail,
		}
	}

	return model.Outcome{
		Payout:     payoutOf(bet, mult),
		Multiplier: mult,
		Tag:        model.TagWin,
		Detail:     detail,
	}
}
