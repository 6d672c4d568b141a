package resp

import (
	"casino_settlement/internal/model"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Kind   string            `json:"kind"`
	Fields map[string]string `json:"fields,omitempty"`
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// StatusFor HTTP-статус класса ошибки
func StatusFor(kind model.ErrorKind) int {
	switch kind {
	case model.KindValidation, model.KindInsufficientFunds:
		return http.StatusBadRequest
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindConflict:
		return http.StatusConflict
	case model.KindUpstreamUnavailable, model.KindPersistenceDegraded:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError ответ по классу ошибки. Внутренние подробности наружу не отдаются.
func WriteError(w http.ResponseWriter, err error) {
	kind := model.KindOf(err)
	msg := err.Error()
	if kind == model.KindInternal {
		msg = "internal error"
	}
	WriteJSONResponse(w, StatusFor(kind), ErrorResponse{Error: msg, Kind: kind.String()})
}

// WriteBadRequest ошибка разбора или валидации тела запроса
func WriteBadRequest(w http.ResponseWriter, err error) {
	body := ErrorResponse{Error: "invalid request", Kind: model.KindValidation.String()}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		body.Fields = make(map[string]string, len(verrs))
		for _, e := range verrs {
			body.Fields[strings.ToLower(e.Field())] = e.Tag()
		}
	}
	WriteJSONResponse(w, http.StatusBadRequest, body)
}
