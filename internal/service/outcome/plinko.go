package outcome

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/rng"

	"github.com/shopspring/decimal"
)

// PlinkoTables множители слотов по сложности
var PlinkoTables = map[string][]float64{
	model.DifficultyEasy:   {1.2, 2.0, 3.0},
	model.DifficultyNormal: {1.1, 1.92, 4.8, 21.1},
	model.DifficultyHard:   {0.5, 1.34, 2.5, 5.0, 10.0},
}

// Plinko сложность задаёт таблицу, слот выбирается равновероятно
type Plinko struct{}

func (Plinko) Compute(bet decimal.Decimal, _ model.GameConfig, params model.GameParams, src rng.Source) model.Outcome {
	difficulty := params.Difficulty
	table, ok := PlinkoTables[difficulty]
	if !ok {
		difficulty = model.DifficultyNormal
		table = PlinkoTables[difficulty]
	}

	slot := src.UniformInt(0, len(table)-1)
	mult := table[slot]
	payout := payoutOf(bet, mult)

	return model.Outcome{
		Payout:     payout,
		Multiplier: mult,
		Tag:        classify(bet, payout),
		Detail:     model.PlinkoDetail{Difficulty: difficulty, Slot: slot, Multiplier: mult},
	}
}
