package converter

import (
	"casino_settlement/internal/api/dto/player"
	"casino_settlement/internal/model"
	"encoding/json"
)

func ToBalanceResponse(p model.Player) player.BalanceResponse {
	return player.BalanceResponse{
		PlayerID: p.ID,
		Balance:  p.Balance,
		Currency: p.Currency,
	}
}

func ToRoundResponses(rounds []model.Round) []player.RoundResponse {
	result := make([]player.RoundResponse, len(rounds))
	for i, r := range rounds {
		data := r.Data
		if len(data) == 0 {
			data = json.RawMessage("{}")
		}
		result[i] = player.RoundResponse{
			ID:          r.ID,
			Game:        r.GameSlug,
			GameType:    string(r.GameType),
			SessionID:   r.SessionID,
			Action:      string(r.Action),
			Bet:         r.Bet,
			Payout:      r.Payout,
			Bonus:       r.Bonus,
			Multiplier:  r.Multiplier,
			Tag:         string(r.Tag),
			IsWin:       r.IsWin,
			Data:        data,
			CompletedAt: r.CompletedAt,
		}
	}
	return result
}

func ToTransactionResponse(tx model.Transaction) player.TransactionResponse {
	meta := tx.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	return player.TransactionResponse{
		ID:            tx.ID,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		BalanceBefore: tx.BalanceBefore,
		BalanceAfter:  tx.BalanceAfter,
		Currency:      tx.Currency,
		Status:        tx.Status,
		Metadata:      meta,
		CreatedAt:     tx.CreatedAt,
	}
}

func ToTransactionResponses(txs []model.Transaction) []player.TransactionResponse {
	result := make([]player.TransactionResponse, len(txs))
	for i, tx := range txs {
		result[i] = ToTransactionResponse(tx)
	}
	return result
}

func ToStatsResponse(st model.PlayerStats) player.StatsResponse {
	return player.StatsResponse{
		TotalRounds: st.TotalRounds,
		TotalWins:   st.TotalWins,
		WinRate:     st.WinRate,
		TotalBet:    st.TotalBet,
		TotalWon:    st.TotalWon,
	}
}

func ToAchievementResponses(list []model.Achievement) []player.AchievementResponse {
	result := make([]player.AchievementResponse, len(list))
	for i, a := range list {
		result[i] = player.AchievementResponse{
			Type:        string(a.Type),
			Title:       a.Title,
			Description: a.Description,
			Reward:      a.Reward,
			Game:        a.GameSlug,
			RoundID:     a.RoundID,
			CreatedAt:   a.CreatedAt,
		}
	}
	return result
}

func ToDepositMeta(req player.DepositRequest) model.DepositMeta {
	return model.DepositMeta{
		PaymentID: req.PaymentID,
		Currency:  req.Currency,
		Method:    req.Method,
	}
}
