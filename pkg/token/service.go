package token

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceAudience аудитория токенов внешних сервисов
const ServiceAudience = "casino-settlement"

// GenerateServiceToken токен сервиса-партнёра, имя сервиса в claim sub
func GenerateServiceToken(service string, secretKey []byte, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   service,
		Audience:  jwt.ClaimStrings{ServiceAudience},
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

// VerifyServiceToken возвращает имя сервиса. Токен игрока сюда не подходит:
// у него нет нужной аудитории.
func VerifyServiceToken(tokenStr string, secretKey []byte) (string, error) {
	if len(secretKey) == 0 {
		return "", errors.New("service tokens are not configured")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return secretKey, nil
	}, jwt.WithAudience(ServiceAudience), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("invalid service token: %w", err)
	}

	if claims.Subject == "" || !slices.Contains(claims.Audience, ServiceAudience) {
		return "", errors.New("invalid service token claims")
	}

	return claims.Subject, nil
}
