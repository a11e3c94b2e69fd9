package env

import (
	"casino_app/internal/config"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type gamesFile struct {
	Games []gameYAML `yaml:"games"`
}

type gameYAML struct {
	GameType  string `yaml:"game_type"`
	RTP       string `yaml:"rtp"`
	HouseEdge string `yaml:"house_edge"`
	MinBet    string `yaml:"min_bet"`
	MaxBet    string `yaml:"max_bet"`
	MaxPayout string `yaml:"max_payout"`
	Settings  string `yaml:"settings"`
}

type gameConfig struct {
	gameType  string
	rtp       decimal.Decimal
	houseEdge decimal.Decimal
	minBet    decimal.Decimal
	maxBet    decimal.Decimal
	maxPayout decimal.Decimal
	settings  string
}

// NewGamesConfigFromYAML читает дефолтные настройки игр из config.yaml
func NewGamesConfigFromYAML(path string) ([]config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read games config: %w", err)
	}

	var file gamesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse games config: %w", err)
	}
	if len(file.Games) == 0 {
		return nil, fmt.Errorf("games config is empty")
	}

	cfgs := make([]config.GameConfig, 0, len(file.Games))
	for _, g := range file.Games {
		cfg := &gameConfig{
			gameType: g.GameType,
			settings: g.Settings,
		}
		if cfg.gameType == "" {
			return nil, fmt.Errorf("game config without game_type")
		}

		fields := []struct {
			name string
			raw  string
			dst  *decimal.Decimal
		}{
			{"rtp", g.RTP, &cfg.rtp},
			{"house_edge", g.HouseEdge, &cfg.houseEdge},
			{"min_bet", g.MinBet, &cfg.minBet},
			{"max_bet", g.MaxBet, &cfg.maxBet},
			{"max_payout", g.MaxPayout, &cfg.maxPayout},
		}
		for _, f := range fields {
			val, err := decimal.NewFromString(f.raw)
			if err != nil {
				return nil, fmt.Errorf("game %s: invalid %s: %w", g.GameType, f.name, err)
			}
			*f.dst = val
		}

		cfgs = append(cfgs, cfg)
	}

	return cfgs, nil
}

func (cfg *gameConfig) GameType() string {
	return cfg.gameType
}

func (cfg *gameConfig) RTP() decimal.Decimal {
	return cfg.rtp
}

func (cfg *gameConfig) HouseEdge() decimal.Decimal {
	return cfg.houseEdge
}

func (cfg *gameConfig) MinBet() decimal.Decimal {
	return cfg.minBet
}

func (cfg *gameConfig) MaxBet() decimal.Decimal {
	return cfg.maxBet
}

func (cfg *gameConfig) MaxPayout() decimal.Decimal {
	return cfg.maxPayout
}

func (cfg *gameConfig) Settings() string {
	return cfg.settings
}
