package model

import "github.com/shopspring/decimal"

// ActionType закрытый набор игровых действий
type ActionType string

const (
	ActionBet           ActionType = "bet"
	ActionSpin          ActionType = "spin"
	ActionCollect       ActionType = "collect"
	ActionBonus         ActionType = "bonus"
	ActionSlotsPlay     ActionType = "slots_play"
	ActionBlackjackPlay ActionType = "blackjack_play"
	ActionWheelPlay     ActionType = "wheel_play"
	ActionPlinkoPlay    ActionType = "plinko_play"
	ActionMinesBet      ActionType = "mines_bet"
	ActionMinesCashout  ActionType = "mines_cashout"
	ActionCoinflipPlay  ActionType = "coinflip_play"
	ActionJackpotPlay   ActionType = "jackpot_play"
)

// Actions все действия в порядке объявления
var Actions = []ActionType{
	ActionBet, ActionSpin, ActionCollect, ActionBonus,
	ActionSlotsPlay, ActionBlackjackPlay, ActionWheelPlay, ActionPlinkoPlay,
	ActionMinesBet, ActionMinesCashout, ActionCoinflipPlay, ActionJackpotPlay,
}

// directPlayGame игра, которую требует каждое действие без сессии
var directPlayGame = map[ActionType]GameType{
	ActionSlotsPlay:     GameSlot,
	ActionBlackjackPlay: GameBlackjack,
	ActionWheelPlay:     GameWheel,
	ActionPlinkoPlay:    GamePlinko,
	ActionCoinflipPlay:  GameCoinflip,
	ActionJackpotPlay:   GameJackpot,
	ActionMinesBet:      GameMines,
	ActionMinesCashout:  GameMines,
}

func (a ActionType) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// IsDirectPlay ставка и расчёт одним вызовом, без сессии
func (a ActionType) IsDirectPlay() bool {
	_, ok := directPlayGame[a]
	return ok && a != ActionMinesBet && a != ActionMinesCashout
}

// RequiredGameType тип игры, к которому привязано действие.
// Для сессионных действий ok == false: они работают с любой игрой.
func (a ActionType) RequiredGameType() (GameType, bool) {
	t, ok := directPlayGame[a]
	return t, ok
}

// TakesBet действие списывает ставку из запроса
func (a ActionType) TakesBet() bool {
	return a == ActionBet || a == ActionMinesBet || a.IsDirectPlay()
}

const (
	ChoiceHeads = "heads"
	ChoiceTails = "tails"

	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"

	DefaultMinesCount = 10
	MinMinesCount     = 1
	MaxMinesCount     = 24
)

// GameParams параметры конкретной игры
type GameParams struct {
	Choice     string
	Difficulty string
	MinesCount int
	// Multiplier множитель на кэшауте мин, приходит от клиента
	Multiplier *float64
	Revealed   int
}

// Wager провалидированный запрос на игру
type Wager struct {
	PlayerID       int64
	GameSlug       string
	Action         ActionType
	Bet            decimal.Decimal
	Params         GameParams
	IdempotencyKey string
}
