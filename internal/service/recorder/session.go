package recorder

import (
	"casino_settlement/internal/model"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OpenSession открывает сессию. Если у игрока уже есть открытая сессия в этой игре - ConflictError.
func (s *serv) OpenSession(ctx context.Context, playerID int64, gameSlug string, bet decimal.Decimal,
	kind model.SessionKind, minesCount int) (*model.Session, error) {
	session := &model.Session{
		ID:         uuid.NewString(),
		PlayerID:   playerID,
		GameSlug:   gameSlug,
		Kind:       kind,
		Bet:        bet,
		MinesCount: minesCount,
		CreatedAt:  s.now(),
	}

	err := s.sessionRepo.CreateSession(ctx, session)
	if errors.Is(err, model.ErrConflict) {
		return nil, model.WrapError(model.KindConflict, "session already open for "+gameSlug, err)
	}
	if err != nil {
		return nil, model.Classify("open session", err)
	}

	return session, nil
}

// CurrentSession открытая сессия игрока или NotFound
func (s *serv) CurrentSession(ctx context.Context, playerID int64, gameSlug string) (*model.Session, error) {
	session, err := s.sessionRepo.GetOpenSession(ctx, playerID, gameSlug)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.WrapError(model.KindNotFound, "no open session for "+gameSlug, err)
	}
	if err != nil {
		return nil, model.Classify("current session", err)
	}
	return session, nil
}

func (s *serv) MarkSpun(ctx context.Context, session *model.Session) error {
	if err := checkOpen(session); err != nil {
		return err
	}
	now := s.now()
	session.Spins++
	session.LastSpunAt = &now
	return s.update(ctx, session)
}

func (s *serv) IncrementBonus(ctx context.Context, session *model.Session) error {
	if err := checkOpen(session); err != nil {
		return err
	}
	session.BonusRounds++
	return s.update(ctx, session)
}

// CloseSession закрывает сессию, повторное закрытие - ConflictError
func (s *serv) CloseSession(ctx context.Context, session *model.Session) error {
	if err := checkOpen(session); err != nil {
		return err
	}
	now := s.now()
	session.CompletedAt = &now
	return s.update(ctx, session)
}

func checkOpen(session *model.Session) error {
	if !session.Open() {
		return model.NewError(model.KindConflict, "session "+session.ID+" is already closed")
	}
	return nil
}

func (s *serv) update(ctx context.Context, session *model.Session) error {
	if err := s.sessionRepo.UpdateSession(ctx, session); err != nil {
		return model.Classify("update session", err)
	}
	return nil
}
