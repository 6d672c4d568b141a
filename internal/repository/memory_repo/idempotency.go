package memory_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"
)

type idempotencyRepo struct {
	s *Store
}

func NewIdempotencyRepository(s *Store) repository.IdempotencyRepository {
	return &idempotencyRepo{s: s}
}

func (r *idempotencyRepo) GetRecord(ctx context.Context, key string) (*model.IdempotencyRecord, error) {
	defer r.s.lock(ctx)()
	rec, ok := r.s.data.idempotency[key]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &rec, nil
}

func (r *idempotencyRepo) SaveRecord(ctx context.Context, record *model.IdempotencyRecord) error {
	defer r.s.lock(ctx)()
	if _, ok := r.s.data.idempotency[record.Key]; ok {
		return model.ErrConflict
	}
	r.s.data.idempotency[record.Key] = *record
	return nil
}
