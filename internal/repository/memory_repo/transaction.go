package memory_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"
	"maps"
)

type transactionRepo struct {
	s *Store
}

func NewTransactionRepository(s *Store) repository.TransactionRepository {
	return &transactionRepo{s: s}
}

func (r *transactionRepo) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	defer r.s.lock(ctx)()
	stored := *tx
	stored.Metadata = maps.Clone(tx.Metadata)
	r.s.data.transactions = append(r.s.data.transactions, stored)
	return nil
}

func (r *transactionRepo) GetTransactionsByPlayer(ctx context.Context, playerID int64) ([]model.Transaction, error) {
	defer r.s.lock(ctx)()
	var res []model.Transaction
	for _, tx := range r.s.data.transactions {
		if tx.PlayerID == playerID {
			res = append(res, tx)
		}
	}
	return res, nil
}
