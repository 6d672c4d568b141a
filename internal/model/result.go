package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SettlementResult результат одного действия
type SettlementResult struct {
	Action     ActionType
	GameSlug   string
	Tag        OutcomeTag
	Bet        decimal.Decimal
	Payout     decimal.Decimal
	Bonus      decimal.Decimal
	Multiplier float64
	NewBalance decimal.Decimal
	RoundID    string
	SessionID  string
	IsWin      bool
	Profit     decimal.Decimal
	Detail     OutcomeDetail
	// Degraded раунд не записан, хотя баланс уже изменён
	Degraded bool
	// Replayed ответ взят из записи идемпотентности
	Replayed bool
}

type storedResult struct {
	Action     ActionType      `json:"action"`
	GameSlug   string          `json:"game_slug"`
	Tag        OutcomeTag      `json:"tag"`
	Bet        decimal.Decimal `json:"bet"`
	Payout     decimal.Decimal `json:"payout"`
	Bonus      decimal.Decimal `json:"bonus"`
	Multiplier float64         `json:"multiplier"`
	NewBalance decimal.Decimal `json:"new_balance"`
	RoundID    string          `json:"round_id,omitempty"`
	SessionID  string          `json:"session_id,omitempty"`
	IsWin      bool            `json:"is_win"`
	Profit     decimal.Decimal `json:"profit"`
	Detail     json.RawMessage `json:"detail"`
	Degraded   bool            `json:"degraded,omitempty"`
}

func (r SettlementResult) MarshalJSON() ([]byte, error) {
	detail, err := MarshalDetail(r.Detail)
	if err != nil {
		return nil, err
	}
	return json.Marshal(storedResult{
		Action:     r.Action,
		GameSlug:   r.GameSlug,
		Tag:        r.Tag,
		Bet:        r.Bet,
		Payout:     r.Payout,
		Bonus:      r.Bonus,
		Multiplier: r.Multiplier,
		NewBalance: r.NewBalance,
		RoundID:    r.RoundID,
		SessionID:  r.SessionID,
		IsWin:      r.IsWin,
		Profit:     r.Profit,
		Detail:     detail,
		Degraded:   r.Degraded,
	})
}

func (r *SettlementResult) UnmarshalJSON(data []byte) error {
	var s storedResult
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	detail, err := UnmarshalDetail(s.Detail)
	if err != nil {
		return err
	}
	*r = SettlementResult{
		Action:     s.Action,
		GameSlug:   s.GameSlug,
		Tag:        s.Tag,
		Bet:        s.Bet,
		Payout:     s.Payout,
		Bonus:      s.Bonus,
		Multiplier: s.Multiplier,
		NewBalance: s.NewBalance,
		RoundID:    s.RoundID,
		SessionID:  s.SessionID,
		IsWin:      s.IsWin,
		Profit:     s.Profit,
		Detail:     detail,
		Degraded:   s.Degraded,
	}
	return nil
}

// RecordPolicy когда записывается раунд относительно изменения баланса
type RecordPolicy string

const (
	// RecordStrict раунд пишется в той же транзакции, что и баланс
	RecordStrict RecordPolicy = "strict"
	// RecordDegraded раунд пишется после коммита, ошибка помечает результат Degraded
	RecordDegraded RecordPolicy = "degraded"
)

func (p RecordPolicy) Valid() bool {
	return p == RecordStrict || p == RecordDegraded
}
