package token

import (
	"casino_settlement/internal/model"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken выпускает токен с id игрока в claim jti
func GenerateAccessToken(playerID int64, secretKey []byte, ttl time.Duration) (string, error) {
	claims := model.PlayerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        strconv.FormatInt(playerID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.PlayerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.PlayerClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.PlayerClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// PlayerID id игрока из claims
func PlayerID(claims *model.PlayerClaims) (int64, error) {
	id, err := strconv.ParseInt(claims.ID, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid player id %q in token", claims.ID)
	}
	return id, nil
}
