package ledger

import (
	"casino_settlement/internal/model"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const depositKeyPrefix = "deposit:"

// CreditExternalDeposit зачисление из платёжной системы.
// Идемпотентно по PaymentID: повтор возвращает исходную транзакцию без нового начисления.
// Кошелёк создаётся, если игрок пополняет баланс впервые.
func (s *serv) CreditExternalDeposit(ctx context.Context, playerID int64, amount decimal.Decimal, meta model.DepositMeta) (*model.Transaction, error) {
	paymentID := strings.TrimSpace(meta.PaymentID)
	if paymentID == "" {
		return nil, model.NewError(model.KindValidation, "payment id is required")
	}
	key := depositKeyPrefix + paymentID

	var result *model.Transaction
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Платёж уже зачислен
		record, err := s.idempotencyRepo.GetRecord(ctx, key)
		switch {
		case err == nil:
			if record.PlayerID != playerID {
				return model.NewError(model.KindConflict, "payment "+paymentID+" belongs to another player")
			}
			var stored model.Transaction
			if err = json.Unmarshal(record.Payload, &stored); err != nil {
				return err
			}
			result = &stored
			return nil
		case !errors.Is(err, model.ErrNotFound):
			return err
		}

		// 2. Кошелёк
		if err = s.ensurePlayer(ctx, playerID, meta.Currency); err != nil {
			return err
		}

		// 3. Начисление
		tx, err := s.Credit(ctx, model.LedgerEntry{
			PlayerID: playerID,
			Type:     model.TransactionDeposit,
			Amount:   amount,
			Metadata: map[string]any{
				"payment_id": paymentID,
				"currency":   meta.Currency,
				"method":     meta.Method,
			},
		})
		if err != nil {
			return err
		}

		// 4. Запоминаем платёж в той же транзакции
		payload, err := json.Marshal(tx)
		if err != nil {
			return err
		}
		if err = s.idempotencyRepo.SaveRecord(ctx, &model.IdempotencyRecord{
			Key:         key,
			PlayerID:    playerID,
			Fingerprint: amount.String(),
			Payload:     payload,
			CreatedAt:   time.Now().UTC(),
		}); err != nil {
			return err
		}

		result = tx
		return nil
	})
	if err != nil {
		return nil, model.Classify("ledger: deposit", err)
	}

	return result, nil
}

func (s *serv) ensurePlayer(ctx context.Context, playerID int64, currency string) error {
	_, err := s.playerRepo.GetPlayer(ctx, playerID)
	if !errors.Is(err, model.ErrNotFound) {
		return err
	}
	if currency == "" {
		currency = model.DefaultCurrency
	}
	return s.playerRepo.CreatePlayer(ctx, &model.Player{
		ID:       playerID,
		Balance:  decimal.Zero,
		Currency: currency,
	})
}
