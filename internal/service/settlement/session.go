package settlement

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/rng"
	"context"

	"github.com/shopspring/decimal"
)

const (
	bonusMinMultiplier = 1.5
	bonusMaxMultiplier = 3.0
)

// placeBet списывает ставку и открывает сессию bet -> spin -> collect.
// Если сессия уже открыта, списание откатывается вместе с транзакцией.
func (s *serv) placeBet(ctx context.Context, p *play) (*model.SettlementResult, error) {
	tx, err := s.ledger.Debit(ctx, p.entry(model.TransactionBet, p.wager.Bet))
	if err != nil {
		return nil, err
	}

	session, err := s.recorder.OpenSession(ctx, p.wager.PlayerID, p.game.Slug, p.wager.Bet, model.SessionTable, 0)
	if err != nil {
		return nil, err
	}
	p.sessionID = session.ID

	return p.finish(p.wager.Bet, model.Outcome{Payout: decimal.Zero, Tag: model.TagPending}, tx.BalanceAfter), nil
}

// tableSession текущая сессия bet/spin/collect
func (s *serv) tableSession(ctx context.Context, p *play) (*model.Session, error) {
	session, err := s.recorder.CurrentSession(ctx, p.wager.PlayerID, p.game.Slug)
	if err != nil {
		return nil, err
	}
	if session.Kind != model.SessionTable {
		return nil, model.NewError(model.KindValidation, string(p.wager.Action)+" requires a table session, open one with bet")
	}
	p.sessionID = session.ID
	return session, nil
}

// spin разыгрывает раунд на ставку сессии
func (s *serv) spin(ctx context.Context, p *play) (*model.SettlementResult, error) {
	session, err := s.tableSession(ctx, p)
	if err != nil {
		return nil, err
	}
	bet := session.Bet
	if !p.wager.Bet.IsZero() && !p.wager.Bet.Equal(bet) {
		return nil, model.NewError(model.KindValidation, "spin bet "+p.wager.Bet.String()+" differs from session bet "+bet.String())
	}

	src := s.rngFactory.ForRound(p.roundID)
	out := s.registry.ForSpin(p.game.Type).Compute(bet, p.game, p.wager.Params, src)

	balance, err := s.pay(ctx, p, model.TransactionWin, out.Payout)
	if err != nil {
		return nil, err
	}

	if p.game.SpinClosesSession {
		err = s.recorder.CloseSession(ctx, session)
	} else {
		err = s.recorder.MarkSpun(ctx, session)
	}
	if err != nil {
		return nil, err
	}

	return p.finish(bet, out, balance), nil
}

// collect закрывает сессию. Баланс не меняется.
func (s *serv) collect(ctx context.Context, p *play) (*model.SettlementResult, error) {
	session, err := s.tableSession(ctx, p)
	if err != nil {
		return nil, err
	}
	if err = s.recorder.CloseSession(ctx, session); err != nil {
		return nil, err
	}

	balance, err := s.balance(ctx, p)
	if err != nil {
		return nil, err
	}
	return p.finish(decimal.Zero, model.Outcome{Payout: decimal.Zero, Tag: model.TagCollected}, balance), nil
}

// bonus начисляет Uniform(1.5, 3.0) ставок сессии
func (s *serv) bonus(ctx context.Context, p *play) (*model.SettlementResult, error) {
	session, err := s.tableSession(ctx, p)
	if err != nil {
		return nil, err
	}

	mult := rng.Between(s.rngFactory.ForRound(p.roundID), bonusMinMultiplier, bonusMaxMultiplier)
	amount := session.Bet.Mul(decimal.NewFromFloat(mult)).Round(2)

	tx, err := s.ledger.Credit(ctx, p.entry(model.TransactionBonus, amount))
	if err != nil {
		return nil, err
	}
	if err = s.recorder.IncrementBonus(ctx, session); err != nil {
		return nil, err
	}

	out := model.Outcome{
		Payout:     decimal.Zero,
		Multiplier: mult,
		Tag:        model.TagBonus,
		Bonus:      amount,
	}
	// бонус не раунд: ставка уже учтена в bet
	return p.finish(decimal.Zero, out, tx.BalanceAfter), nil
}

// pay начисляет выплату, если она есть, и возвращает баланс после неё
func (s *serv) pay(ctx context.Context, p *play, txType model.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return s.balance(ctx, p)
	}
	tx, err := s.ledger.Credit(ctx, p.entry(txType, amount))
	if err != nil {
		return decimal.Zero, err
	}
	return tx.BalanceAfter, nil
}

func (s *serv) balance(ctx context.Context, p *play) (decimal.Decimal, error) {
	player, err := s.ledger.Balance(ctx, p.wager.PlayerID)
	if err != nil {
		return decimal.Zero, err
	}
	return player.Balance, nil
}
