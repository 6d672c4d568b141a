package outcome

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/rng"

	"github.com/shopspring/decimal"
)

const (
	ColorRed   = "red"
	ColorBlack = "black"
	ColorGreen = "green"
)

var redNumbers = map[int]struct{}{
	1: {}, 3: {}, 5: {}, 7: {}, 9: {}, 12: {}, 14: {}, 16: {}, 18: {},
	19: {}, 21: {}, 23: {}, 25: {}, 27: {}, 30: {}, 32: {}, 34: {}, 36: {},
}

// RouletteColor цвет номера европейской рулетки
func RouletteColor(n int) string {
	if n == 0 {
		return ColorGreen
	}
	if _, ok := redNumbers[n]; ok {
		return ColorRed
	}
	return ColorBlack
}

// Roulette ставка неявно на выпавший цвет, выигрыш с вероятностью R*0.8, x2
type Roulette struct{}

func (Roulette) Compute(bet decimal.Decimal, cfg model.GameConfig, _ model.GameParams, src rng.Source) model.Outcome {
	number := src.UniformInt(0, 36)
	color := RouletteColor(number)
	detail := model.RouletteDetail{Number: number, Color: color}

	if number == 0 {
		return model.Outcome{Payout: decimal.Zero, Tag: model.TagZero, Detail: detail}
	}

	won := src.Uniform() < cfg.RTPFraction()*0.8
	out := model.Outcome{Payout: decimal.Zero, Detail: detail}
	if won {
		out.Payout = payoutOf(bet, 2)
		out.Multiplier = 2
	}

	switch {
	case color == ColorRed && won:
		out.Tag = model.TagRedWin
	case color == ColorRed:
		out.Tag = model.TagRedLoss
	case won:
		out.Tag = model.TagBlackWin
	default:
		out.Tag = model.TagBlackLoss
	}
	return out
}
