package recorder

import (
	"casino_settlement/internal/repository"
	"casino_settlement/internal/service"
	"time"
)

type serv struct {
	roundRepo   repository.RoundRepository
	sessionRepo repository.SessionRepository
	now         func() time.Time
}

// NewRecorderService журнал раундов и игровых сессий
func NewRecorderService(
	roundRepo repository.RoundRepository,
	sessionRepo repository.SessionRepository,
) service.RecorderService {
	return &serv{
		roundRepo:   roundRepo,
		sessionRepo: sessionRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}
