package ledger

import (
	"casino_settlement/internal/model"
	"context"
)

// Balance текущий баланс игрока
func (s *serv) Balance(ctx context.Context, playerID int64) (*model.Player, error) {
	player, err := s.playerRepo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, model.Classify("ledger: balance", err)
	}
	return player, nil
}

// Transactions журнал игрока в порядке создания
func (s *serv) Transactions(ctx context.Context, playerID int64) ([]model.Transaction, error) {
	list, err := s.transactionRepo.GetTransactionsByPlayer(ctx, playerID)
	if err != nil {
		return nil, model.Classify("ledger: transactions", err)
	}
	return list, nil
}
