package env

import (
	"casino_settlement/internal/config"
	"errors"
	"net"
	"os"
)

const (
	httpAddressEnvName = "HTTP_ADDRESS"
	defaultHTTPAddress = ":8080"
)

type httpConfig struct {
	address string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	address := os.Getenv(httpAddressEnvName)
	if len(address) == 0 {
		address = defaultHTTPAddress
	}

	if _, _, err := net.SplitHostPort(address); err != nil {
		return nil, errors.New("invalid http address: " + address)
	}

	return &httpConfig{
		address: address,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}
