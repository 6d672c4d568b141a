package player

import (
	dto "casino_settlement/internal/api/dto/player"
	"casino_settlement/internal/converter"
	"casino_settlement/internal/logger"
	"casino_settlement/internal/middleware"
	"casino_settlement/internal/model"
	"casino_settlement/internal/service"
	"casino_settlement/pkg/req"
	"casino_settlement/pkg/resp"
	"net/http"
)

const achievementsLimit = 10

type HandlerDeps struct {
	Serv    service.SettlementService
	Profile service.ProfileService
}

type Handler struct {
	serv    service.SettlementService
	profile service.ProfileService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:    deps.Serv,
		profile: deps.Profile,
	}
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	p, err := h.serv.Balance(r.Context(), playerID)
	if err != nil {
		resp.WriteError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(*p))
}

func (h *Handler) Rounds(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	rounds, err := h.serv.Rounds(r.Context(), playerID)
	if err != nil {
		resp.WriteError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundResponses(rounds))
}

func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	txs, err := h.serv.Transactions(r.Context(), playerID)
	if err != nil {
		resp.WriteError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTransactionResponses(txs))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	st, err := h.profile.Stats(r.Context(), playerID)
	if err != nil {
		resp.WriteError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*st))
}

func (h *Handler) Achievements(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	list, err := h.profile.Achievements(r.Context(), playerID, achievementsLimit)
	if err != nil {
		resp.WriteError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAchievementResponses(list))
}

// Deposit зачисление подтверждённого платежа. Повтор того же payment_id
// возвращает исходную транзакцию.
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		resp.WriteBadRequest(w, err)
		return
	}

	source, _ := middleware.ServiceFromContext(r.Context())
	tx, err := h.serv.CreditExternalDeposit(r.Context(), payload.PlayerID, payload.Amount, converter.ToDepositMeta(payload))
	if err != nil {
		if model.KindOf(err) != model.KindValidation {
			logger.FromContext(r.Context()).Warn("deposit failed",
				"player_id", payload.PlayerID,
				"payment_id", payload.PaymentID,
				"service", source,
				"error", err)
		}
		resp.WriteError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToTransactionResponse(*tx))
}
