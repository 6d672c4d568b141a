package settlement

import (
	"casino_settlement/internal/model"
	"time"

	"github.com/shopspring/decimal"
)

// play состояние одного вызова Settle
type play struct {
	wager     model.Wager
	game      model.GameConfig
	roundID   string
	startedAt time.Time
	sessionID string

	// pending раунд, который нужно записать
	pending *model.RoundInput
	// recorded записанный раунд
	recorded *model.Round
}

// producesRound действие завершает раунд
func producesRound(a model.ActionType) bool {
	return a == model.ActionSpin || a == model.ActionMinesCashout || a.IsDirectPlay()
}

func (p *play) entry(txType model.TransactionType, amount decimal.Decimal) model.LedgerEntry {
	meta := map[string]any{
		"game":   p.game.Slug,
		"action": string(p.wager.Action),
	}
	if producesRound(p.wager.Action) {
		meta["round_id"] = p.roundID
	}
	if p.sessionID != "" {
		meta["session_id"] = p.sessionID
	}
	return model.LedgerEntry{
		PlayerID: p.wager.PlayerID,
		Type:     txType,
		Amount:   amount,
		Metadata: meta,
	}
}

// finish ставит раунд в очередь на запись и собирает результат
func (p *play) finish(bet decimal.Decimal, out model.Outcome, balance decimal.Decimal) *model.SettlementResult {
	if producesRound(p.wager.Action) {
		p.pending = &model.RoundInput{
			ID:        p.roundID,
			PlayerID:  p.wager.PlayerID,
			Game:      p.game,
			SessionID: p.sessionID,
			Action:    p.wager.Action,
			Bet:       bet,
			Outcome:   out,
			StartedAt: p.startedAt,
		}
	}
	return p.result(bet, out, balance)
}

func (p *play) result(bet decimal.Decimal, out model.Outcome, balance decimal.Decimal) *model.SettlementResult {
	res := &model.SettlementResult{
		Action:     p.wager.Action,
		GameSlug:   p.game.Slug,
		Tag:        out.Tag,
		Bet:        bet,
		Payout:     out.Payout,
		Bonus:      out.Bonus,
		Multiplier: out.Multiplier,
		NewBalance: balance,
		SessionID:  p.sessionID,
		IsWin:      out.Payout.GreaterThan(bet),
		Profit:     out.Payout.Add(out.Bonus).Sub(bet),
		Detail:     out.Detail,
	}
	if p.pending != nil {
		res.RoundID = p.roundID
	}
	return res
}
