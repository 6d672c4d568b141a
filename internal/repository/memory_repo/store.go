// Package memory_repo хранилище в памяти для запуска без Postgres и для тестов.
// Store сам реализует trm.Manager: транзакция держит общий мьютекс и
// откатывает снимок состояния при ошибке.
package memory_repo

import (
	"casino_settlement/internal/model"
	"context"
	"maps"
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type txKey struct{}

type state struct {
	players      map[int64]model.Player
	transactions []model.Transaction
	rounds       []model.Round
	sessions     map[string]model.Session
	games        map[string]model.GameConfig
	idempotency  map[string]model.IdempotencyRecord
	achievements map[string]model.Achievement
}

// clone слайсы только дописываются, поэтому достаточно скопировать заголовки
func (s state) clone() state {
	return state{
		players:      maps.Clone(s.players),
		transactions: s.transactions,
		rounds:       s.rounds,
		sessions:     maps.Clone(s.sessions),
		games:        maps.Clone(s.games),
		idempotency:  maps.Clone(s.idempotency),
		achievements: maps.Clone(s.achievements),
	}
}

type Store struct {
	mu   sync.Mutex
	data state
}

var _ trm.Manager = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		data: state{
			players:      make(map[int64]model.Player),
			sessions:     make(map[string]model.Session),
			games:        make(map[string]model.GameConfig),
			idempotency:  make(map[string]model.IdempotencyRecord),
			achievements: make(map[string]model.Achievement),
		},
	}
}

// Do выполняет fn атомарно. Вложенный вызов присоединяется к внешней транзакции.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	snapshot := s.data.clone()
	committed := false
	defer func() {
		if !committed {
			s.data = snapshot
		}
		s.mu.Unlock()
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *Store) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return s.Do(ctx, fn)
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// lock берёт мьютекс только вне транзакции: внутри он уже у нас
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
