package outcome

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/rng"

	"github.com/shopspring/decimal"
)

const blackjackTotal = 21

func dealCards(src rng.Source) (player, dealer []int) {
	player = []int{src.UniformInt(1, 10), src.UniformInt(1, 10)}
	dealer = []int{src.UniformInt(1, 10), src.UniformInt(1, 10)}
	return player, dealer
}

func sum(cards []int) int {
	total := 0
	for _, c := range cards {
		total += c
	}
	return total
}

func blackjackDetail(player, dealer []int) model.BlackjackDetail {
	return model.BlackjackDetail{
		PlayerCards: player,
		DealerCards: dealer,
		PlayerTotal: sum(player),
		DealerTotal: sum(dealer),
	}
}

// SimpleBlackjack упрощённый вариант для spin: сумма дилера считается,
// но с суммой игрока не сравнивается
type SimpleBlackjack struct{}

func (SimpleBlackjack) Compute(bet decimal.Decimal, cfg model.GameConfig, _ model.GameParams, src rng.Source) model.Outcome {
	player, dealer := dealCards(src)
	detail := blackjackDetail(player, dealer)

	if detail.PlayerTotal == blackjackTotal {
		return model.Outcome{
			Payout:     payoutOf(bet, 2.5),
			Multiplier: 2.5,
			Tag:        model.TagBlackjack,
			Detail:     detail,
		}
	}

	if src.Uniform() >= cfg.RTPFraction() {
		return lost(detail)
	}

	mult := rng.Between(src, 1.5, 2.0)
	return model.Outcome{
		Payout:     payoutOf(bet, mult),
		Multiplier: mult,
		Tag:        model.TagWin,
		Detail:     detail,
	}
}

// TotalsBlackjack вариант blackjack_play: сравнение сумм игрока и дилера
type TotalsBlackjack struct{}

func (TotalsBlackjack) Compute(bet decimal.Decimal, _ model.GameConfig, _ model.GameParams, src rng.Source) model.Outcome {
	player, dealer := dealCards(src)
	detail := blackjackDetail(player, dealer)

	var (
		tag  model.OutcomeTag
		mult float64
	)
	switch p, d := detail.PlayerTotal, detail.DealerTotal; {
	case p > blackjackTotal:
		tag, mult = model.TagBust, 0
	case d > blackjackTotal:
		tag, mult = model.TagDealerBust, 2
	case p > d:
		tag, mult = model.TagWin, 2
	case p < d:
		tag, mult = model.TagLoss, 0
	default:
		tag, mult = model.TagPush, 1
	}

	return model.Outcome{
		Payout:     payoutOf(bet, mult),
		Multiplier: mult,
		Tag:        tag,
		Detail:     detail,
	}
}
