package req

import (
	"encoding/json"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Decode читает JSON тела запроса и проверяет теги validate
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	defer body.Close()

	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, err
	}
	if err := IsValid(payload); err != nil {
		return payload, err
	}
	return payload, nil
}

func IsValid[T any](payload T) error {
	return validate.Struct(payload)
}
