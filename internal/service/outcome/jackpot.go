package outcome

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/rng"

	"github.com/shopspring/decimal"
)

// JackpotChance фиксированная вероятность, от RTP не зависит
const JackpotChance = 0.10

// Jackpot при выигрыше множитель U(5, 20)
type Jackpot struct{}

func (Jackpot) Compute(bet decimal.Decimal, _ model.GameConfig, _ model.GameParams, src rng.Source) model.Outcome {
	if src.Uniform() >= JackpotChance {
		return lost(model.JackpotDetail{})
	}

	mult := rng.Between(src, 5.0, 20.0)
	return model.Outcome{
		Payout:     payoutOf(bet, mult),
		Multiplier: mult,
		Tag:        model.TagJackpot,
		Detail:     model.JackpotDetail{Won: true, Multiplier: mult},
	}
}
