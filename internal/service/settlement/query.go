package settlement

import (
	"casino_settlement/internal/model"
	"context"

	"github.com/shopspring/decimal"
)

func (s *serv) Rounds(ctx context.Context, playerID int64) ([]model.Round, error) {
	return s.recorder.Rounds(ctx, playerID)
}

func (s *serv) Transactions(ctx context.Context, playerID int64) ([]model.Transaction, error) {
	return s.ledger.Transactions(ctx, playerID)
}

func (s *serv) Balance(ctx context.Context, playerID int64) (*model.Player, error) {
	return s.ledger.Balance(ctx, playerID)
}

// CreditExternalDeposit пополнение встаёт в ту же очередь игрока, что и ставки
func (s *serv) CreditExternalDeposit(ctx context.Context, playerID int64, amount decimal.Decimal, meta model.DepositMeta) (*model.Transaction, error) {
	unlock, err := s.locks.LockPlayer(ctx, playerID)
	if err != nil {
		return nil, model.Classify("deposit: player lock", err)
	}
	defer unlock()

	return s.ledger.CreditExternalDeposit(ctx, playerID, amount, meta)
}
