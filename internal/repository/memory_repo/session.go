package memory_repo

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"context"
)

type sessionRepo struct {
	s *Store
}

func NewSessionRepository(s *Store) repository.SessionRepository {
	return &sessionRepo{s: s}
}

func (r *sessionRepo) openLocked(playerID int64, gameSlug string) (model.Session, bool) {
	for _, sess := range r.s.data.sessions {
		if sess.PlayerID == playerID && sess.GameSlug == gameSlug && sess.Open() {
			return sess, true
		}
	}
	return model.Session{}, false
}

func (r *sessionRepo) CreateSession(ctx context.Context, session *model.Session) error {
	defer r.s.lock(ctx)()
	if _, exists := r.openLocked(session.PlayerID, session.GameSlug); exists {
		return model.ErrConflict
	}
	r.s.data.sessions[session.ID] = *session
	return nil
}

func (r *sessionRepo) GetOpenSession(ctx context.Context, playerID int64, gameSlug string) (*model.Session, error) {
	defer r.s.lock(ctx)()
	sess, ok := r.openLocked(playerID, gameSlug)
	if !ok {
		return nil, model.ErrNotFound
	}
	return &sess, nil
}

func (r *sessionRepo) UpdateSession(ctx context.Context, session *model.Session) error {
	defer r.s.lock(ctx)()
	if _, ok := r.s.data.sessions[session.ID]; !ok {
		return model.ErrNotFound
	}
	r.s.data.sessions[session.ID] = *session
	return nil
}
