package env

import (
	"casino_settlement/internal/config"
	"casino_settlement/internal/model"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	catalogPathEnvName = "GAME_CATALOG_PATH"
	defaultCatalogPath = "games.yaml"
)

type catalogFile struct {
	Games []gameEntry `yaml:"games" validate:"required,min=1,dive"`
}

type gameEntry struct {
	Slug              string `yaml:"slug" validate:"required"`
	Title             string `yaml:"title"`
	Type              string `yaml:"type" validate:"required,oneof=SLOT ROULETTE BLACKJACK WHEEL PLINKO MINES COINFLIP JACKPOT"`
	MinBet            string `yaml:"min_bet" validate:"required,numeric"`
	MaxBet            string `yaml:"max_bet" validate:"required,numeric"`
	RTP               string `yaml:"rtp" validate:"required,numeric"`
	Active            *bool  `yaml:"active"`
	SpinClosesSession *bool  `yaml:"spin_closes_session"`
}

type catalogConfig struct {
	games []model.GameConfig
}

// CatalogPath путь к YAML-каталогу игр из окружения
func CatalogPath() string {
	return getenv(catalogPathEnvName, defaultCatalogPath)
}

// NewCatalogConfigFromYAML читает каталог игр. Неуказанные active и
// spin_closes_session считаются true.
func NewCatalogConfigFromYAML(path string) (config.CatalogConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (config.CatalogConfig, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Games))
	games := make([]model.GameConfig, 0, len(file.Games))
	for _, e := range file.Games {
		if _, dup := seen[e.Slug]; dup {
			return nil, fmt.Errorf("duplicate game slug %q", e.Slug)
		}
		seen[e.Slug] = struct{}{}

		g := model.GameConfig{
			Slug:              e.Slug,
			Title:             e.Title,
			Type:              model.GameType(e.Type),
			MinBet:            decimal.RequireFromString(e.MinBet),
			MaxBet:            decimal.RequireFromString(e.MaxBet),
			RTP:               decimal.RequireFromString(e.RTP),
			Active:            e.Active == nil || *e.Active,
			SpinClosesSession: e.SpinClosesSession == nil || *e.SpinClosesSession,
		}
		if g.Title == "" {
			g.Title = g.Slug
		}
		if err := g.Validate(); err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return &catalogConfig{games: games}, nil
}

func (c *catalogConfig) Games() []model.GameConfig {
	return c.games
}
