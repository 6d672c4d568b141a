package outcome

import (
	"casino_settlement/internal/model"
	"fmt"
	"strings"
)

// NormalizeParams подставляет значения по умолчанию и отбраковывает
// некорректные параметры до любых изменений состояния
func NormalizeParams(action model.ActionType, p model.GameParams) (model.GameParams, error) {
	switch action {
	case model.ActionCoinflipPlay:
		p.Choice = strings.ToLower(strings.TrimSpace(p.Choice))
		if p.Choice == "" {
			p.Choice = model.ChoiceHeads
		}
		if p.Choice != model.ChoiceHeads && p.Choice != model.ChoiceTails {
			return p, model.NewError(model.KindValidation, fmt.Sprintf("choice must be heads or tails, got %q", p.Choice))
		}

	case model.ActionPlinkoPlay:
		p.Difficulty = strings.ToLower(strings.TrimSpace(p.Difficulty))
		if p.Difficulty == "" {
			p.Difficulty = model.DifficultyNormal
		}
		if _, ok := PlinkoTables[p.Difficulty]; !ok {
			return p, model.NewError(model.KindValidation, fmt.Sprintf("unknown difficulty %q", p.Difficulty))
		}

	case model.ActionMinesBet:
		if p.MinesCount == 0 {
			p.MinesCount = model.DefaultMinesCount
		}
		if p.MinesCount < model.MinMinesCount || p.MinesCount > model.MaxMinesCount {
			return p, model.NewError(model.KindValidation,
				fmt.Sprintf("mines count must be in [%d, %d]", model.MinMinesCount, model.MaxMinesCount))
		}

	case model.ActionMinesCashout:
		if p.Multiplier == nil {
			return p, model.NewError(model.KindValidation, "multiplier is required for cashout")
		}
		if *p.Multiplier < 0 {
			return p, model.NewError(model.KindValidation, "multiplier must not be negative")
		}
		if p.Revealed < 0 {
			return p, model.NewError(model.KindValidation, "revealed must not be negative")
		}
	}
	return p, nil
}
