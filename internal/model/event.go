package model

// SettlementEvent то, что видят хуки после коммита расчёта.
// Round == nil, если действие не создаёт раунд или запись раунда не удалась.
type SettlementEvent struct {
	PlayerID int64
	Game     GameConfig
	Result   SettlementResult
	Round    *Round
}
