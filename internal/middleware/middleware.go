package middleware

import (
	"casino_settlement/internal/logger"
	"casino_settlement/internal/model"
	"casino_settlement/pkg/resp"
	"casino_settlement/pkg/token"
	"context"
	"net/http"
	"strconv"
	"strings"
)

const (
	RequestIDHeader = "X-Request-ID"
	PlayerIDHeader  = "X-Player-ID"
)

type ctxKey string

const (
	playerIDKey ctxKey = "playerID"
	serviceKey  ctxKey = "service"
)

// RequestID кладёт X-Request-ID (или новый uuid) в контекст логгера
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = logger.GenerateRequestID()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}

// Player определяет игрока запроса. С секретом - только по bearer JWT,
// без него по заголовку X-Player-ID.
func Player(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := playerFromRequest(r, secret)
			if err != nil {
				unauthorized(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPlayerID(r.Context(), id)))
		})
	}
}

// Service пускает только запросы сервисов-партнёров с bearer токеном,
// подписанным secret. Пустой secret закрывает маршрут целиком.
func Service(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearer(r)
			if !ok {
				unauthorized(w, model.NewError(model.KindValidation, "missing bearer token"))
				return
			}
			service, err := token.VerifyServiceToken(raw, secret)
			if err != nil {
				logger.FromContext(r.Context()).Warn("service token rejected",
					"path", r.URL.Path,
					"error", err)
				unauthorized(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), serviceKey, service)))
		})
	}
}

// ServiceFromContext имя сервиса, положенное Service
func ServiceFromContext(ctx context.Context) (string, bool) {
	service, ok := ctx.Value(serviceKey).(string)
	return service, ok
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	resp.WriteJSONResponse(w, http.StatusUnauthorized, resp.ErrorResponse{
		Error: err.Error(),
		Kind:  "unauthorized",
	})
}

func bearer(r *http.Request) (string, bool) {
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return raw, ok && raw != ""
}

func playerFromRequest(r *http.Request, secret []byte) (int64, error) {
	if len(secret) > 0 {
		raw, ok := bearer(r)
		if !ok {
			return 0, model.NewError(model.KindValidation, "missing bearer token")
		}
		claims, err := token.VerifyToken(raw, secret)
		if err != nil {
			return 0, err
		}
		return token.PlayerID(claims)
	}

	id, err := strconv.ParseInt(r.Header.Get(PlayerIDHeader), 10, 64)
	if err != nil || id <= 0 {
		return 0, model.NewError(model.KindValidation, "missing or invalid "+PlayerIDHeader)
	}
	return id, nil
}

func WithPlayerID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, playerIDKey, id)
}

// PlayerIDFromContext id, положенный Player
func PlayerIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(playerIDKey).(int64)
	return id, ok
}
