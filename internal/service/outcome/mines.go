package outcome

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/rng"

	"github.com/shopspring/decimal"
)

// MinesCashout выплата bet*multiplier. Множитель приходит от клиента,
// поле мин на сервере не хранится. Случайных значений не тратит.
type MinesCashout struct{}

func (MinesCashout) Compute(bet decimal.Decimal, _ model.GameConfig, params model.GameParams, _ rng.Source) model.Outcome {
	var mult float64
	if params.Multiplier != nil {
		mult = *params.Multiplier
	}

	payout := payoutOf(bet, mult)
	return model.Outcome{
		Payout:     payout,
		Multiplier: mult,
		Tag:        classify(bet, payout),
		Detail: model.MinesDetail{
			MinesCount: params.MinesCount,
			Revealed:   params.Revealed,
			Multiplier: mult,
		},
	}
}
