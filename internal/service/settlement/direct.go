package settlement

import (
	"casino_settlement/internal/model"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// directPlay ставка, исход и выплата одним действием
func (s *serv) directPlay(ctx context.Context, p *play) (*model.SettlementResult, error) {
	gen, ok := s.registry.ForAction(p.wager.Action)
	if !ok {
		return nil, model.NewError(model.KindInternal, fmt.Sprintf("no generator for %s", p.wager.Action))
	}

	if _, err := s.ledger.Debit(ctx, p.entry(model.TransactionBet, p.wager.Bet)); err != nil {
		return nil, err
	}

	bet := p.wager.Bet
	out := gen.Compute(bet, p.game, p.wager.Params, s.rngFactory.ForRound(p.roundID))

	balance, err := s.pay(ctx, p, model.TransactionWin, out.Payout)
	if err != nil {
		return nil, err
	}
	if out.Bonus.IsPositive() {
		if balance, err = s.pay(ctx, p, model.TransactionBonus, out.Bonus); err != nil {
			return nil, err
		}
	}

	return p.finish(bet, out, balance), nil
}

// minesBet списывает ставку и открывает сессию мин
func (s *serv) minesBet(ctx context.Context, p *play) (*model.SettlementResult, error) {
	tx, err := s.ledger.Debit(ctx, p.entry(model.TransactionBet, p.wager.Bet))
	if err != nil {
		return nil, err
	}

	session, err := s.recorder.OpenSession(ctx, p.wager.PlayerID, p.game.Slug, p.wager.Bet,
		model.SessionMines, p.wager.Params.MinesCount)
	if err != nil {
		return nil, err
	}
	p.sessionID = session.ID

	out := model.Outcome{
		Payout: decimal.Zero,
		Tag:    model.TagPending,
		Detail: model.MinesDetail{MinesCount: session.MinesCount},
	}
	return p.finish(p.wager.Bet, out, tx.BalanceAfter), nil
}

// minesCashout рассчитывает сессию мин по множителю клиента. Множитель 0 - проигрыш.
func (s *serv) minesCashout(ctx context.Context, p *play) (*model.SettlementResult, error) {
	session, err := s.recorder.CurrentSession(ctx, p.wager.PlayerID, p.game.Slug)
	if err != nil {
		return nil, err
	}
	if session.Kind != model.SessionMines {
		return nil, model.NewError(model.KindValidation, "cashout requires a mines session, open one with mines_bet")
	}
	p.sessionID = session.ID

	gen, ok := s.registry.ForAction(p.wager.Action)
	if !ok {
		return nil, model.NewError(model.KindInternal, "no generator for mines cashout")
	}

	params := p.wager.Params
	params.MinesCount = session.MinesCount
	out := gen.Compute(session.Bet, p.game, params, s.rngFactory.ForRound(p.roundID))

	balance, err := s.pay(ctx, p, model.TransactionWin, out.Payout)
	if err != nil {
		return nil, err
	}
	if err = s.recorder.CloseSession(ctx, session); err != nil {
		return nil, err
	}

	return p.finish(session.Bet, out, balance), nil
}
