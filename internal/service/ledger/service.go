// Package ledger журнал баланса. Каждое изменение баланса проходит здесь
// и оставляет ровно одну запись Transaction.
package ledger

import (
	"casino_settlement/internal/repository"
	"casino_settlement/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager       trm.Manager
	playerRepo      repository.PlayerRepository
	transactionRepo repository.TransactionRepository
	idempotencyRepo repository.IdempotencyRepository
}

func NewLedgerService(
	txManager trm.Manager,
	playerRepo repository.PlayerRepository,
	transactionRepo repository.TransactionRepository,
	idempotencyRepo repository.IdempotencyRepository,
) service.LedgerService {
	return &serv{
		txManager:       txManager,
		playerRepo:      playerRepo,
		transactionRepo: transactionRepo,
		idempotencyRepo: idempotencyRepo,
	}
}
