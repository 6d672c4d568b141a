package converter

import (
	"casino_settlement/internal/api/dto/game"
	"casino_settlement/internal/model"
)

func ToWager(playerID int64, slug string, req game.ActionRequest) model.Wager {
	return model.Wager{
		PlayerID: playerID,
		GameSlug: slug,
		Action:   model.ActionType(req.Action),
		Bet:      req.BetAmount,
		Params: model.GameParams{
			Choice:     req.Choice,
			Difficulty: req.Difficulty,
			MinesCount: req.MinesCount,
			Multiplier: req.Multiplier,
			Revealed:   req.Revealed,
		},
		IdempotencyKey: req.IdempotencyKey,
	}
}

func ToActionResponse(res model.SettlementResult) (game.ActionResponse, error) {
	detail, err := model.MarshalDetail(res.Detail)
	if err != nil {
		return game.ActionResponse{}, err
	}

	return game.ActionResponse{
		Action:     string(res.Action),
		Game:       res.GameSlug,
		Tag:        string(res.Tag),
		Bet:        res.Bet,
		Payout:     res.Payout,
		Bonus:      res.Bonus,
		Multiplier: res.Multiplier,
		Profit:     res.Profit,
		IsWin:      res.IsWin,
		NewBalance: res.NewBalance,
		RoundID:    res.RoundID,
		SessionID:  res.SessionID,
		Detail:     detail,
		Degraded:   res.Degraded,
		Replayed:   res.Replayed,
	}, nil
}

func ToGameResponses(games []model.GameConfig) []game.GameResponse {
	result := make([]game.GameResponse, 0, len(games))
	for _, g := range games {
		if !g.Active {
			continue
		}
		result = append(result, game.GameResponse{
			Slug:   g.Slug,
			Title:  g.Title,
			Type:   string(g.Type),
			MinBet: g.MinBet,
			MaxBet: g.MaxBet,
			RTP:    g.RTP,
		})
	}
	return result
}
