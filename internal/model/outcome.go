package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// OutcomeTag классификация результата
type OutcomeTag string

const (
	TagWin        OutcomeTag = "win"
	TagLoss       OutcomeTag = "loss"
	TagPush       OutcomeTag = "push"
	TagJackpot    OutcomeTag = "jackpot"
	TagBonus      OutcomeTag = "bonus"
	TagZero       OutcomeTag = "zero"
	TagSevenWin   OutcomeTag = "seven_win"
	TagSmallWin   OutcomeTag = "small_win"
	TagMediumWin  OutcomeTag = "medium_win"
	TagBigWin     OutcomeTag = "big_win"
	TagRedWin     OutcomeTag = "red_win"
	TagRedLoss    OutcomeTag = "red_loss"
	TagBlackWin   OutcomeTag = "black_win"
	TagBlackLoss  OutcomeTag = "black_loss"
	TagBlackjack  OutcomeTag = "blackjack"
	TagBust       OutcomeTag = "bust"
	TagDealerBust OutcomeTag = "dealer_bust"

	// теги сессионных действий без исхода
	TagPending   OutcomeTag = "pending"
	TagCollected OutcomeTag = "collected"
)

// Outcome результат генератора. Payout - полный возврат, не чистая прибыль.
type Outcome struct {
	Payout     decimal.Decimal
	Multiplier float64
	Tag        OutcomeTag
	// Bonus начисляется сверх выплаты (сегмент 0.1 у колеса из 24 секторов)
	Bonus  decimal.Decimal
	Detail OutcomeDetail
}

// OutcomeDetail метаданные исхода конкретной игры
type OutcomeDetail interface {
	Kind() string
}

type SlotDetail struct {
	Symbols []string `json:"symbols"`
}

type RouletteDetail struct {
	Number int    `json:"number"`
	Color  string `json:"color"`
}

type BlackjackDetail struct {
	PlayerCards []int `json:"player_cards"`
	DealerCards []int `json:"dealer_cards"`
	PlayerTotal int   `json:"player_total"`
	DealerTotal int   `json:"dealer_total"`
}

type WheelDetail struct {
	Segment    int     `json:"segment"`
	Multiplier float64 `json:"multiplier"`
	Table      string  `json:"table"`
}

type PlinkoDetail struct {
	Difficulty string  `json:"difficulty"`
	Slot       int     `json:"slot"`
	Multiplier float64 `json:"multiplier"`
}

type MinesDetail struct {
	MinesCount int     `json:"mines_count"`
	Revealed   int     `json:"revealed"`
	Multiplier float64 `json:"multiplier"`
}

type CoinflipDetail struct {
	Choice string `json:"choice"`
	Result string `json:"result"`
}

type JackpotDetail struct {
	Won        bool    `json:"won"`
	Multiplier float64 `json:"multiplier"`
}

type GenericDetail struct {
	Won        bool    `json:"won"`
	Multiplier float64 `json:"multiplier"`
}

func (SlotDetail) Kind() string      { return "slot" }
func (RouletteDetail) Kind() string  { return "roulette" }
func (BlackjackDetail) Kind() string { return "blackjack" }
func (WheelDetail) Kind() string     { return "wheel" }
func (PlinkoDetail) Kind() string    { return "plinko" }
func (MinesDetail) Kind() string     { return "mines" }
func (CoinflipDetail) Kind() string  { return "coinflip" }
func (JackpotDetail) Kind() string   { return "jackpot" }
func (GenericDetail) Kind() string   { return "generic" }

type detailEnvelope struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// MarshalDetail сериализует детали вместе с дискриминатором kind
func MarshalDetail(d OutcomeDetail) (json.RawMessage, error) {
	if d == nil {
		return json.RawMessage("null"), nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(detailEnvelope{Kind: d.Kind(), Data: data})
}

var detailDecoders = map[string]func(json.RawMessage) (OutcomeDetail, error){
	SlotDetail{}.Kind():      decodeDetail[SlotDetail],
	RouletteDetail{}.Kind():  decodeDetail[RouletteDetail],
	BlackjackDetail{}.Kind(): decodeDetail[BlackjackDetail],
	WheelDetail{}.Kind():     decodeDetail[WheelDetail],
	PlinkoDetail{}.Kind():    decodeDetail[PlinkoDetail],
	MinesDetail{}.Kind():     decodeDetail[MinesDetail],
	CoinflipDetail{}.Kind():  decodeDetail[CoinflipDetail],
	JackpotDetail{}.Kind():   decodeDetail[JackpotDetail],
	GenericDetail{}.Kind():   decodeDetail[GenericDetail],
}

func decodeDetail[T OutcomeDetail](data json.RawMessage) (OutcomeDetail, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// UnmarshalDetail восстанавливает детали по дискриминатору kind
func UnmarshalDetail(raw json.RawMessage) (OutcomeDetail, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var env detailEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	decode, ok := detailDecoders[env.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown outcome detail kind %q", env.Kind)
	}
	return decode(env.Data)
}
