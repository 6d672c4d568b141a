package model

import (
	"encoding/json"
	"time"
)

// IdempotencyRecord сохранённый ответ на повторяемый запрос
type IdempotencyRecord struct {
	Key         string
	PlayerID    int64
	Fingerprint string
	Payload     json.RawMessage
	CreatedAt   time.Time
}
