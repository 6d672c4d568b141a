package outcome

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/rng"

	"github.com/shopspring/decimal"
)

// Generic запасной вариант: выигрыш с вероятностью RTP, множитель U(1, 3)
type Generic struct{}

func (Generic) Compute(bet decimal.Decimal, cfg model.GameConfig, _ model.GameParams, src rng.Source) model.Outcome {
	if src.Uniform() >= cfg.RTPFraction() {
		return lost(model.GenericDetail{})
	}

	mult := rng.Between(src, 1.0, 3.0)
	return model.Outcome{
		Payout:     payoutOf(bet, mult),
		Multiplier: mult,
		Tag:        model.TagWin,
		Detail:     model.GenericDetail{Won: true, Multiplier: mult},
	}
}
