package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type SessionConfig interface {
	SessionTTL() time.Duration
	SweepInterval() time.Duration
}

type SMTPConfig interface {
	Configured() bool
	Addr() string
	Host() string
	User() string
	Pass() string
	From() string
}

type AppConfig interface {
	BaseURL() string
}

// GameConfig - параметры игры по умолчанию из config.yaml.
// При старте сервиса заливаются в таблицу game_settings, если записи еще нет
type GameConfig interface {
	GameType() string
	RTP() decimal.Decimal
	HouseEdge() decimal.Decimal
	MinBet() decimal.Decimal
	MaxBet() decimal.Decimal
	MaxPayout() decimal.Decimal
	Settings() string
}
