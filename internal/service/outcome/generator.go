// Package outcome чистые генераторы исходов: ставка, конфиг и случайные
// значения на входе, выплата и метаданные на выходе. Никаких побочных эффектов.
package outcome

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/rng"

	"github.com/shopspring/decimal"
)

// Generator вычисляет исход одного раунда. Все случайные значения
// берутся из переданного src.
type Generator interface {
	Compute(bet decimal.Decimal, cfg model.GameConfig, params model.GameParams, src rng.Source) model.Outcome
}

// payoutOf полный возврат bet*mult с округлением до копеек
func payoutOf(bet decimal.Decimal, mult float64) decimal.Decimal {
	return bet.Mul(decimal.NewFromFloat(mult)).Round(2)
}

// lost проигрыш: выплата 0
func lost(detail model.OutcomeDetail) model.Outcome {
	return model.Outcome{Payout: decimal.Zero, Tag: model.TagLoss, Detail: detail}
}

// classify тег по выплате относительно ставки
func classify(bet, payout decimal.Decimal) model.OutcomeTag {
	switch payout.Cmp(bet) {
	case 1:
		return model.TagWin
	case 0:
		return model.TagPush
	default:
		return model.TagLoss
	}
}

// IsWin выигрышем считается выплата больше ставки
func IsWin(bet decimal.Decimal, out model.Outcome) bool {
	return out.Payout.GreaterThan(bet)
}
