package ledger

import (
	"casino_settlement/internal/logger"
	"casino_settlement/internal/model"
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
)

// Debit списывает entry.Amount. При нехватке средств баланс не меняется
// и транзакция не создаётся.
func (s *serv) Debit(ctx context.Context, entry model.LedgerEntry) (*model.Transaction, error) {
	if !entry.Type.IsDebit() {
		return nil, model.NewError(model.KindValidation, fmt.Sprintf("%s is not a debit", entry.Type))
	}
	return s.apply(ctx, entry)
}

// Credit начисляет entry.Amount
func (s *serv) Credit(ctx context.Context, entry model.LedgerEntry) (*model.Transaction, error) {
	if entry.Type.IsDebit() {
		return nil, model.NewError(model.KindValidation, fmt.Sprintf("%s is not a credit", entry.Type))
	}
	return s.apply(ctx, entry)
}

func (s *serv) apply(ctx context.Context, entry model.LedgerEntry) (*model.Transaction, error) {
	if !entry.Type.Valid() {
		return nil, model.NewError(model.KindValidation, fmt.Sprintf("unknown transaction type %q", entry.Type))
	}
	amount := entry.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, model.NewError(model.KindValidation, "amount must be positive")
	}

	var result *model.Transaction
	// Присоединяется к транзакции расчёта, если она уже открыта
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Читаем баланс с блокировкой строки
		player, err := s.playerRepo.GetPlayerForUpdate(ctx, entry.PlayerID)
		if err != nil {
			return err
		}

		// 2. Считаем новый баланс
		before := player.Balance
		after := before.Add(amount)
		if entry.Type.IsDebit() {
			if before.LessThan(amount) {
				return model.NewError(model.KindInsufficientFunds,
					fmt.Sprintf("balance %s is less than %s", before, amount))
			}
			after = before.Sub(amount)
		}

		// 3. Записываем баланс и журнал
		if err = s.playerRepo.UpdateBalance(ctx, player.ID, after); err != nil {
			return err
		}

		tx := &model.Transaction{
			ID:            uuid.NewString(),
			PlayerID:      player.ID,
			Type:          entry.Type,
			Amount:        amount,
			BalanceBefore: before,
			BalanceAfter:  after,
			Currency:      player.Currency,
			Status:        model.TransactionCompleted,
			Metadata:      maps.Clone(entry.Metadata),
			CreatedAt:     time.Now().UTC(),
		}
		if err = s.transactionRepo.CreateTransaction(ctx, tx); err != nil {
			return err
		}

		result = tx
		return nil
	})
	if err != nil {
		return nil, model.Classify("ledger", err)
	}

	logger.FromContext(ctx).Debug("balance changed",
		"player_id", result.PlayerID,
		"type", result.Type,
		"amount", result.Amount.String(),
		"balance_after", result.BalanceAfter.String())

	return result, nil
}
