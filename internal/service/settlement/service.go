// Package settlement оркестратор игровых действий: проверяет запрос,
// берёт исход у генератора и проводит списание, выплату и запись раунда
// одной транзакцией.
package settlement

import (
	"casino_settlement/internal/concurrency"
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"casino_settlement/internal/rng"
	"casino_settlement/internal/service"
	"casino_settlement/internal/service/outcome"
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type handlerFunc func(ctx context.Context, p *play) (*model.SettlementResult, error)

type serv struct {
	txManager       trm.Manager
	ledger          service.LedgerService
	recorder        service.RecorderService
	catalog         service.CatalogService
	idempotencyRepo repository.IdempotencyRepository
	registry        *outcome.Registry
	rngFactory      rng.Factory
	locks           *concurrency.LockManager
	hook            service.SettlementHook
	policy          model.RecordPolicy

	handlers map[model.ActionType]handlerFunc
	now      func() time.Time
}

// NewSettlementService hook может быть nil
func NewSettlementService(
	txManager trm.Manager,
	ledger service.LedgerService,
	recorder service.RecorderService,
	catalog service.CatalogService,
	idempotencyRepo repository.IdempotencyRepository,
	registry *outcome.Registry,
	rngFactory rng.Factory,
	locks *concurrency.LockManager,
	hook service.SettlementHook,
	policy model.RecordPolicy,
) service.SettlementService {
	if !policy.Valid() {
		policy = model.RecordStrict
	}
	s := &serv{
		txManager:       txManager,
		ledger:          ledger,
		recorder:        recorder,
		catalog:         catalog,
		idempotencyRepo: idempotencyRepo,
		registry:        registry,
		rngFactory:      rngFactory,
		locks:           locks,
		hook:            hook,
		policy:          policy,
		now:             func() time.Time { return time.Now().UTC() },
	}

	s.handlers = map[model.ActionType]handlerFunc{
		model.ActionBet:          s.placeBet,
		model.ActionSpin:         s.spin,
		model.ActionCollect:      s.collect,
		model.ActionBonus:        s.bonus,
		model.ActionMinesBet:     s.minesBet,
		model.ActionMinesCashout: s.minesCashout,
	}
	for _, action := range model.Actions {
		if action.IsDirectPlay() {
			s.handlers[action] = s.directPlay
		}
	}

	return s
}
