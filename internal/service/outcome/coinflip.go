package outcome

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/rng"

	"github.com/shopspring/decimal"
)

var coinFaces = []string{model.ChoiceHeads, model.ChoiceTails}

// Coinflip x2 при совпадении с выбором игрока
type Coinflip struct{}

func (Coinflip) Compute(bet decimal.Decimal, _ model.GameConfig, params model.GameParams, src rng.Source) model.Outcome {
	result := rng.Pick(src, coinFaces)
	detail := model.CoinflipDetail{Choice: params.Choice, Result: result}

	if result != params.Choice {
		return lost(detail)
	}
	return model.Outcome{
		Payout:     payoutOf(bet, 2),
		Multiplier: 2,
		Tag:        model.TagWin,
		Detail:     detail,
	}
}
