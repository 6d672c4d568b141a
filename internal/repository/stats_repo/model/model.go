package model

// GameStats наблюдаемый RTP одной игры
type GameStats struct {
	GameSlug    string  `json:"game_slug"`
	TotalRounds int     `json:"total_rounds"` // Сколько всего раундов сыграно
	TotalBet    float64 `json:"total_bet"`    // Сумма всех ставок
	TotalPayout float64 `json:"total_payout"` // Сумма всех выплат (вместе с бонусами)
	CurrentRTP  float64 `json:"current_rtp"`  // (TotalPayout/TotalBet)*100
	TargetRTP   float64 `json:"target_rtp"`   // RTP из конфигурации игры
	WindowRTP   float64 `json:"window_rtp"`   // RTP в окне последних раундов
	WindowSize  int     `json:"window_size"`  // Размер окна
	WindowCount int     `json:"window_count"` // Сколько раундов сейчас в окне
}

// RoundResult раунд для окна
type RoundResult struct {
	Bet    float64
	Payout float64
}
