package game

import (
	dto "casino_settlement/internal/api/dto/game"
	"casino_settlement/internal/converter"
	"casino_settlement/internal/logger"
	"casino_settlement/internal/metrics"
	"casino_settlement/internal/middleware"
	"casino_settlement/internal/model"
	"casino_settlement/internal/service"
	"casino_settlement/pkg/req"
	"casino_settlement/pkg/resp"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv    service.SettlementService
	Catalog service.CatalogService
	Stats   service.StatsService
}

type Handler struct {
	serv    service.SettlementService
	catalog service.CatalogService
	stats   service.StatsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:    deps.Serv,
		catalog: deps.Catalog,
		stats:   deps.Stats,
	}
}

// Act проводит одно игровое действие игрока
func (h *Handler) Act(w http.ResponseWriter, r *http.Request) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	payload, err := req.Decode[dto.ActionRequest](r.Body)
	if err != nil {
		resp.WriteBadRequest(w, err)
		return
	}

	wager := converter.ToWager(playerID, chi.URLParam(r, "slug"), payload)
	result, err := h.serv.Settle(r.Context(), wager)
	if err != nil {
		kind := model.KindOf(err)
		metrics.SettlementErrors.WithLabelValues(payload.Action, kind.String()).Inc()
		if kind == model.KindInternal || kind == model.KindUpstreamUnavailable {
			logger.FromContext(r.Context()).Error("settlement failed",
				"player_id", playerID,
				"game", wager.GameSlug,
				"action", wager.Action,
				"error", err)
		}
		resp.WriteError(w, err)
		return
	}

	response, err := converter.ToActionResponse(*result)
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, response)
}

// List активные игры каталога
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.catalog.List(r.Context())
	if err != nil {
		resp.WriteError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponses(games))
}

// Stats наблюдаемый RTP игры
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if _, err := h.catalog.Get(r.Context(), slug); err != nil {
		resp.WriteError(w, err)
		return
	}

	stats, ok := h.stats.GameStats(slug)
	if !ok {
		stats.GameSlug = slug
	}
	resp.WriteJSONResponse(w, http.StatusOK, stats)
}
