package outcome

import "casino_settlement/internal/model"

// Registry таблицы генераторов: для spin по типу игры,
// для прямых игр по действию
type Registry struct {
	spin     map[model.GameType]Generator
	direct   map[model.ActionType]Generator
	fallback Generator
}

func NewRegistry() *Registry {
	return &Registry{
		spin: map[model.GameType]Generator{
			model.GameSlot:      ThreeReelSlot{},
			model.GameRoulette:  Roulette{},
			model.GameBlackjack: SimpleBlackjack{},
			model.GameWheel:     WeightedWheel{},
		},
		direct: map[model.ActionType]Generator{
			model.ActionSlotsPlay:     FiveReelSlot{},
			model.ActionBlackjackPlay: TotalsBlackjack{},
			model.ActionWheelPlay:     FixedTableWheel{},
			model.ActionPlinkoPlay:    Plinko{},
			model.ActionCoinflipPlay:  Coinflip{},
			model.ActionJackpotPlay:   Jackpot{},
			model.ActionMinesCashout:  MinesCashout{},
		},
		fallback: Generic{},
	}
}

// ForSpin генератор для spin в сессии. Для игр без своей формулы - Generic.
func (r *Registry) ForSpin(t model.GameType) Generator {
	if g, ok := r.spin[t]; ok {
		return g
	}
	return r.fallback
}

// ForAction генератор прямой игры
func (r *Registry) ForAction(a model.ActionType) (Generator, bool) {
	g, ok := r.direct[a]
	return g, ok
}
