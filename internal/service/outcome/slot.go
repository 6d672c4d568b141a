package outcome

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/rng"

	"github.com/shopspring/decimal"
)

const (
	symbolSeven = "seven"
	symbolBar   = "bar"
	symbolBell  = "bell"
)

// ThreeReelSymbols алфавит слота с сессией. Барабаны равновероятны.
var ThreeReelSymbols = []string{"cherry", "orange", "grape", "diamond", symbolSeven, "slot_machine"}

// ThreeReelSlot слот из трёх барабанов для spin
type ThreeReelSlot struct{}

func (ThreeReelSlot) Compute(bet decimal.Decimal, cfg model.GameConfig, _ model.GameParams, src rng.Source) model.Outcome {
	symbols := make([]string, 3)
	for i := range symbols {
		symbols[i] = rng.Pick(src, ThreeReelSymbols)
	}
	detail := model.SlotDetail{Symbols: symbols}

	var (
		tag  model.OutcomeTag
		mult float64
	)
	switch {
	case allEqual(symbols):
		tag, mult = model.TagJackpot, rng.Between(src, 2.0, 10.0)
	case count(symbols, symbolSeven) >= 2:
		tag, mult = model.TagSevenWin, rng.Between(src, 1.5, 3.0)
	case src.Uniform() < cfg.RTPFraction()*0.3:
		tag, mult = model.TagSmallWin, rng.Between(src, 1.1, 1.5)
	default:
		return lost(detail)
	}

	return model.Outcome{
		Payout:     payoutOf(bet, mult),
		Multiplier: mult,
		Tag:        tag,
		Detail:     detail,
	}
}

// FiveReelSymbols алфавит слота slots_play
var FiveReelSymbols = []string{"cherry", "lemon", "orange", "plum", symbolBell, symbolBar, symbolSeven}

// FiveReelSlot пять барабанов, платит только за пять одинаковых символов
type FiveReelSlot struct{}

func (FiveReelSlot) Compute(bet decimal.Decimal, _ model.GameConfig, _ model.GameParams, src rng.Source) model.Outcome {
	reels := make([]string, 5)
	for i := range reels {
		reels[i] = rng.Pick(src, FiveReelSymbols)
	}
	detail := model.SlotDetail{Symbols: reels}

	if !allEqual(reels) {
		return lost(detail)
	}

	var (
		tag  model.OutcomeTag
		mult float64
	)
	switch reels[0] {
	case symbolSeven:
		tag, mult = model.TagJackpot, 100
	case symbolBar:
		tag, mult = model.TagBigWin, 50
	case symbolBell:
		tag, mult = model.TagMediumWin, 25
	default:
		tag, mult = model.TagSmallWin, 10
	}

	return model.Outcome{
		Payout:     payoutOf(bet, mult),
		Multiplier: mult,
		Tag:        tag,
		Detail:     detail,
	}
}

func allEqual(symbols []string) bool {
	for _, s := range symbols[1:] {
		if s != symbols[0] {
			return false
		}
	}
	return true
}

func count(symbols []string, target string) int {
	n := 0
	for _, s := range symbols {
		if s == target {
			n++
		}
	}
	return n
}
