package settlement

import (
	"casino_settlement/internal/logger"
	"casino_settlement/internal/model"
	"casino_settlement/internal/service/outcome"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Settle проводит одно игровое действие.
// Порядок: проверка запроса, каталог, лимиты ставки, блокировка игрока,
// повтор по ключу идемпотентности, единица работы в транзакции, хуки после
// снятия блокировки.
func (s *serv) Settle(ctx context.Context, w model.Wager) (*model.SettlementResult, error) {
	// 1. Проверка запроса до любых изменений
	handler, ok := s.handlers[w.Action]
	if !ok {
		return nil, model.NewError(model.KindValidation, fmt.Sprintf("unknown action %q", w.Action))
	}
	params, err := outcome.NormalizeParams(w.Action, w.Params)
	if err != nil {
		return nil, err
	}
	w.Params = params
	w.Bet = w.Bet.Round(2)

	// 2. Каталог
	game, err := s.catalog.Get(ctx, w.GameSlug)
	if err != nil {
		return nil, err
	}
	if required, ok := w.Action.RequiredGameType(); ok && game.Type != required {
		return nil, model.NewError(model.KindValidation,
			fmt.Sprintf("action %s requires a %s game, %s is %s", w.Action, required, game.Slug, game.Type))
	}

	// 3. Лимиты ставки
	if w.Action.TakesBet() {
		if err = game.CheckBet(w.Bet); err != nil {
			return nil, err
		}
	}

	// 4-8. Под блокировкой игрока
	p := &play{
		wager:     w,
		game:      *game,
		roundID:   uuid.NewString(),
		startedAt: s.now(),
	}
	result, err := s.commit(ctx, p, handler)
	if err != nil {
		return nil, err
	}
	if result.Replayed {
		return result, nil
	}

	// 9. Хуки после коммита, блокировка уже отпущена
	if s.hook != nil {
		if err = s.hook.AfterSettlement(ctx, model.SettlementEvent{
			PlayerID: w.PlayerID,
			Game:     *game,
			Result:   *result,
			Round:    p.recorded,
		}); err != nil {
			logger.FromContext(ctx).Error("post-settlement hook failed",
				"player_id", w.PlayerID,
				"game", game.Slug,
				"error", err)
		}
	}

	return result, nil
}

// commit держит блокировку игрока от повтора по ключу до записи раунда
// в деградированном режиме
func (s *serv) commit(ctx context.Context, p *play, handler handlerFunc) (*model.SettlementResult, error) {
	w := p.wager
	unlock, err := s.locks.LockPlayer(ctx, w.PlayerID)
	if err != nil {
		return nil, model.Classify("settlement: player lock", err)
	}
	defer unlock()

	idemKey := idempotencyKey(w)

	var result *model.SettlementResult
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 5. Повтор запроса
		if idemKey != "" {
			replayed, err := s.replay(ctx, idemKey, w)
			if err != nil {
				return err
			}
			if replayed != nil {
				result = replayed
				return nil
			}
		}

		// 6. Действие
		res, err := handler(ctx, p)
		if err != nil {
			return err
		}

		// 7. В строгом режиме раунд пишется вместе с балансом
		if s.policy == model.RecordStrict && p.pending != nil {
			round, err := s.recorder.RecordRound(ctx, *p.pending)
			if err != nil {
				return err
			}
			p.recorded = round
		}

		if idemKey != "" {
			if err = s.remember(ctx, idemKey, w, res); err != nil {
				return err
			}
		}

		result = res
		return nil
	})
	if err != nil {
		return nil, model.Classify("settlement", err)
	}
	if result.Replayed {
		return result, nil
	}

	log := logger.FromContext(ctx).With(
		"player_id", w.PlayerID,
		"game", p.game.Slug,
		"action", w.Action,
	)

	// 8. Деградированный режим: баланс уже изменён, раунд пишем отдельно
	if s.policy == model.RecordDegraded && p.pending != nil {
		round, err := s.recorder.RecordRound(ctx, *p.pending)
		if err != nil {
			result.Degraded = true
			log.Warn("round not recorded after balance change",
				"round_id", p.roundID,
				"error", err)
		} else {
			p.recorded = round
		}
	}

	log.Debug("settled",
		"tag", result.Tag,
		"bet", result.Bet.String(),
		"payout", result.Payout.String(),
		"new_balance", result.NewBalance.String())

	return result, nil
}

func idempotencyKey(w model.Wager) string {
	if w.IdempotencyKey == "" {
		return ""
	}
	return fmt.Sprintf("settle:%d:%s", w.PlayerID, w.IdempotencyKey)
}

// fingerprint повтор с тем же ключом, но другим запросом - конфликт.
// Params к этому моменту уже нормализованы.
func fingerprint(w model.Wager) string {
	multiplier := "-"
	if m := w.Params.Multiplier; m != nil {
		multiplier = strconv.FormatFloat(*m, 'g', -1, 64)
	}
	return fmt.Sprintf("%s|%s|%s|%s|%s|%d|%s|%d",
		w.Action, w.GameSlug, w.Bet.String(),
		w.Params.Choice, w.Params.Difficulty, w.Params.MinesCount, multiplier, w.Params.Revealed)
}

func (s *serv) replay(ctx context.Context, key string, w model.Wager) (*model.SettlementResult, error) {
	record, err := s.idempotencyRepo.GetRecord(ctx, key)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if record.Fingerprint != fingerprint(w) {
		return nil, model.NewError(model.KindConflict, "idempotency key reused with a different request")
	}

	var stored model.SettlementResult
	if err = json.Unmarshal(record.Payload, &stored); err != nil {
		return nil, model.WrapError(model.KindInternal, "decode stored result", err)
	}
	stored.Replayed = true
	return &stored, nil
}

func (s *serv) remember(ctx context.Context, key string, w model.Wager, res *model.SettlementResult) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return model.WrapError(model.KindInternal, "encode result", err)
	}
	return s.idempotencyRepo.SaveRecord(ctx, &model.IdempotencyRecord{
		Key:         key,
		PlayerID:    w.PlayerID,
		Fingerprint: fingerprint(w),
		Payload:     payload,
		CreatedAt:   s.now(),
	})
}
